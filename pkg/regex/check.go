package regex

func Check(text string, pattern *Pattern) (bool, error) {
	match, err := pattern.Expression.MatchString(text)
	if err != nil {
		return false, err
	}
	return match, nil
}
