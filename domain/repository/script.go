package repository

import (
	"context"

	"creator-dashboard/domain/model"
)

// IScriptGenerator turns a validated request and its prompt into script text.
type IScriptGenerator interface {
	Generate(ctx context.Context, req model.ScriptRequest, prompt string) (string, error)
}
