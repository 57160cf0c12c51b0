package genfix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/genfix"
)

func TestRenderDiff_ShowsRewrite(t *testing.T) {
	t.Parallel()

	before := "import { internal } from \"../_generated/api\";\nexport const x = 1;\n"
	res := genfix.Rewrite(before, "../_generated/api")
	require.Equal(t, genfix.Fixed, res.Outcome)

	out := genfix.RenderDiff("src/main.ts", before, res.Text)

	assert.Contains(t, out, "--- a/src/main.ts")
	assert.Contains(t, out, "+++ b/src/main.ts")
	assert.Contains(t, out, "-import { internal } from \"../_generated/api\";")
	assert.Contains(t, out, "+const internal = require('../_generated/api').internal as any;")
	assert.Contains(t, out, " export const x = 1;")
}

func TestRenderDiff_IdenticalInputs(t *testing.T) {
	t.Parallel()

	out := genfix.RenderDiff("a.ts", "export {};\n", "export {};\n")
	assert.Contains(t, out, " export {};")
	assert.NotContains(t, out, "\n+export")
	assert.NotContains(t, out, "\n-export")
}
