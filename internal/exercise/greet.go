package exercise

import (
	"context"
	"strings"

	"drills/internal/prompt"
	"drills/internal/session"
	"drills/util"
)

// greet asks for a name and says hello.
func greet(ctx context.Context, sess *session.Session) error {
	name, err := prompt.Ask(ctx, sess, prompt.Question[string]{
		Prompt:   "Hi! What is your name?: ",
		Validate: prompt.Any(),
	})
	if err != nil {
		return err
	}
	sess.Console.Printf("Hello, %s!\n", name)
	return sess.Console.Err()
}

// firstChar greets and then reports the first character of the name,
// falling back to '?' when nothing was typed.
func firstChar(ctx context.Context, sess *session.Session) error {
	name, err := prompt.Ask(ctx, sess, prompt.Question[string]{
		Prompt:   "Enter your name: ",
		Validate: prompt.Any(),
	})
	if err != nil {
		return err
	}
	c := sess.Console
	c.Printf("Hello, %s!\n", name)
	c.Printf("The first character of your name is : %c\n", util.FirstRune(name, '?'))
	return c.Err()
}

// compare checks a single answer against "yes" without re-asking.
func compare(ctx context.Context, sess *session.Session) error {
	answer, err := prompt.Ask(ctx, sess, prompt.Question[string]{
		Prompt:   "Hi! Do you want to talk to me? (yes/no)",
		Validate: prompt.Any(),
	})
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "yes") {
		sess.Console.Println("Great! Let's talk!")
	} else {
		sess.Console.Println("Okay, maybe next time!")
	}
	return sess.Console.Err()
}
