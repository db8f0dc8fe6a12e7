package command

import (
	"context"
	"fmt"
)

// Find narrows the view to persons whose name contains any keyword, or whose
// phone equals any keyword when every keyword is a number.
type Find struct {
	Keywords []string
}

func (c Find) Name() string { return "find" }

func (c Find) Execute(_ context.Context, env *Env) (Result, error) {
	people := env.Finder.Find(c.Keywords)
	return Result{
		Feedback: fmt.Sprintf(MessagePersonsListed, len(people)),
		People:   people,
	}, nil
}

// List resets the view to show every person.
type List struct{}

func (c List) Name() string { return "list" }

func (c List) Execute(_ context.Context, env *Env) (Result, error) {
	return Result{Feedback: MessageListedAll, People: env.Finder.ListAll()}, nil
}
