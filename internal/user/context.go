package user

import "context"

type actorKey struct{}

// WithActor stores the session actor for downstream handlers.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the session actor, if the request carried one.
func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || actor.ID.IsNil() {
		return Actor{}, false
	}
	return actor, true
}
