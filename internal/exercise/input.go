package exercise

import (
	"context"

	"drills/internal/prompt"
	"drills/internal/session"
)

type units struct{ opts Options }

func (e *units) Run(ctx context.Context, sess *session.Session) error {
	q, err := prompt.Ask(ctx, sess, prompt.Question[prompt.Quantity]{
		Prompt:   "How much do you weigh?\n(example: 5kg)\nEnter your weight: ",
		Validate: prompt.WithUnit("kg", "Please type a number followed by kg, e.g. 5kg."),
		Budget:   e.opts.unbounded(),
	})
	if err != nil {
		return err
	}
	sess.Console.Printf("You weigh %s kilograms\n", q.Text)
	return sess.Console.Err()
}

type split struct{ opts Options }

func (e *split) Run(ctx context.Context, sess *session.Session) error {
	c := sess.Console
	c.Println("Exercise 84: Split Input")
	c.Println("Enter two numbers separated by space (e.g., '5 3'):")

	p, err := prompt.Ask(ctx, sess, prompt.Question[prompt.Pair]{
		Prompt:   "> ",
		Validate: prompt.IntPair("Please enter exactly two whole numbers, e.g. '5 3'."),
		Budget:   e.opts.unbounded(),
	})
	if err != nil {
		return err
	}
	c.Printf("First number: %d\n", p.First)
	c.Printf("Second number: %d\n", p.Second)
	return c.Err()
}
