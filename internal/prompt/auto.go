package prompt

// AutoConfirm wraps a Prompter and answers every confirmation with its
// default, for --yes runs and scripted environments. Input, text, and
// select prompts still reach the user.
type AutoConfirm struct {
	Prompter
}

// WithAutoConfirm returns p with confirmation prompts auto-answered.
func WithAutoConfirm(p Prompter) AutoConfirm {
	return AutoConfirm{Prompter: p}
}

func (a AutoConfirm) Confirm(spec ConfirmSpec) (bool, error) {
	return spec.Default, nil
}
