package watch

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"

	"github.com/twitchy-cli/twitchy/color"
	"github.com/twitchy-cli/twitchy/icon"
	"github.com/twitchy-cli/twitchy/key"
	"github.com/twitchy-cli/twitchy/query"
	"github.com/twitchy-cli/twitchy/style"
	"github.com/twitchy-cli/twitchy/util"
)

// bind is a reserved menu entry that triggers an action instead of selecting
// an item. Binds are compared by identity.
type bind struct {
	displayName string
}

func (b *bind) String() string {
	return b.displayName
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

var (
	quit   = &bind{"Quit"}
	back   = &bind{"Back"}
	replay = &bind{"Watch again"}
	search = &bind{"Search channel"}
)

// menu shows a select prompt over the given items followed by the given
// binds; quit is always appended. Exactly one of the returned bind and item
// is meaningful: the bind is nil when a regular item was chosen.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	options := make([]string, 0, len(items)+len(binds)+1)
	for _, item := range items {
		options = append(options, item.String())
	}

	binds = append(binds, quit)
	for _, b := range binds {
		options = append(options, b.String())
	}

	prompt := &survey.Select{
		Options:  options,
		PageSize: max(viper.GetInt(key.WatchSearchLimit), len(binds)),
	}

	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		return nil, zero, err
	}

	if index < len(items) {
		return nil, items[index], nil
	}

	return binds[index-len(items)], zero, nil
}

type input struct {
	value string
}

// getInput prompts for a single line, offering remembered channel names as
// suggestions, until the validator accepts it.
func getInput(validate func(s string) bool) (*input, error) {
	prompt := &survey.Input{
		Message: "Channel",
		Suggest: func(toComplete string) []string {
			return query.SuggestMany(toComplete)
		},
	}

	var value string
	err := survey.AskOne(prompt, &value, survey.WithValidator(func(ans any) error {
		s, ok := ans.(string)
		if !ok || !validate(s) {
			return fmt.Errorf("that does not look like a channel name")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return &input{value: strings.TrimSpace(value)}, nil
}

// title prints a section header above a prompt.
func title(message string) {
	fmt.Println(style.Bold(style.Fg(color.Purple)(message)))
}

// progress prints an erasable progress line.
func progress(message string) func() {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), message))
}

// fail prints a non-fatal error line.
func fail(message string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(message))
}
