package cli

import "fmt"

type stringFlag struct {
	Value  string
	WasSet bool
}

func (s *stringFlag) String() string { return s.Value }
func (s *stringFlag) Set(v string) error {
	s.Value = v
	s.WasSet = true
	return nil
}

type intFlag struct {
	Value  int
	WasSet bool
}

func (i *intFlag) String() string { return fmt.Sprintf("%d", i.Value) }
func (i *intFlag) Set(v string) error {
	var parsed int
	_, err := fmt.Sscanf(v, "%d", &parsed)
	if err != nil {
		return err
	}
	i.Value = parsed
	i.WasSet = true
	return nil
}
