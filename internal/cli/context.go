package cli

import (
	"context"
	"fmt"

	"github.com/example/hearth/internal/config"
	"github.com/example/hearth/internal/ctxutil"
)

// actorContext loads the hearth config and returns a context carrying the
// configured user as the acting user, plus the config for space resolution.
func actorContext() (context.Context, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("no hearth config found\nHint: run 'hearth init' first")
	}
	return ctxutil.WithActorID(context.Background(), cfg.UserID), cfg, nil
}
