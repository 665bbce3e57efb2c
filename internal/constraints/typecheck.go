package constraints

import (
	"github.com/HiroakiMikami/deep-coder/internal/dsl"
	"github.com/HiroakiMikami/deep-coder/internal/dsltypes"
)

func typeChecks(p dsl.Program) bool {
	return dsltypes.IsValid(p)
}
