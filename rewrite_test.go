package genfix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/genfix"
)

func TestRewrite_NoQualifyingImport_NoMatch(t *testing.T) {
	t.Parallel()

	input := "import { foo } from \"./foo\";\nexport const x = 1;\n"
	res := genfix.Rewrite(input, "./_generated/api")

	assert.Equal(t, genfix.SkippedNoMatch, res.Outcome)
	assert.False(t, res.Modified())
	assert.Equal(t, input, res.Text)
}

func TestRewrite_SingleInternal_Replaced(t *testing.T) {
	t.Parallel()

	input := "import { internal } from \"../_generated/api\";\n\nexport const x = internal.thing;\n"
	res := genfix.Rewrite(input, "../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.Contains(t, res.Text, "const internal = require('../_generated/api').internal as any;")
	assert.NotContains(t, res.Text, "import { internal }")
	assert.Contains(t, res.Text, "export const x = internal.thing;")
}

func TestRewrite_SingleAPI_Replaced(t *testing.T) {
	t.Parallel()

	input := "import { api } from '../../_generated/api';\n"
	res := genfix.Rewrite(input, "../../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.Contains(t, res.Text, "const api = require('../../_generated/api').api as any;")
	assert.NotContains(t, res.Text, "import { api }")
}

func TestRewrite_SameLineCombined_TwoBindings(t *testing.T) {
	t.Parallel()

	input := "import { api, internal } from \"./_generated/api.js\";\n"
	res := genfix.Rewrite(input, "./_generated/api.js")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.Contains(t, res.Text, "const internal = require('./_generated/api.js').internal as any;")
	assert.Contains(t, res.Text, "const api = require('./_generated/api.js').api as any;")
	assert.NotContains(t, res.Text, "import {")
	assert.Equal(t, 2, strings.Count(res.Text, genfix.Marker), "one marker per generated block")
}

func TestRewrite_SameLineCombined_OrderIndependent(t *testing.T) {
	t.Parallel()

	input := "import { internal, other, api } from \"../_generated/api\";\n"
	res := genfix.Rewrite(input, "../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.Contains(t, res.Text, "const internal = require('../_generated/api').internal as any;")
	assert.Contains(t, res.Text, "const api = require('../_generated/api').api as any;")
}

func TestRewrite_SeparateLines_BothReplaced(t *testing.T) {
	t.Parallel()

	input := "import { internal } from \"../_generated/api\";\n" +
		"import { api } from \"../_generated/api\";\n" +
		"export {};\n"
	res := genfix.Rewrite(input, "../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.Contains(t, res.Text, "const internal = require('../_generated/api').internal as any;")
	assert.Contains(t, res.Text, "const api = require('../_generated/api').api as any;")
	assert.NotContains(t, res.Text, "import {")
}

func TestRewrite_SeparateLines_OnlyMatchingLineReplaced(t *testing.T) {
	t.Parallel()

	// The api import does not come from the generated module, so only the
	// internal line qualifies.
	input := "import { internal } from \"../_generated/api\";\n" +
		"import { api } from \"./api\";\n"
	res := genfix.Rewrite(input, "../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.Contains(t, res.Text, "const internal = require('../_generated/api').internal as any;")
	assert.Contains(t, res.Text, "import { api } from \"./api\";")
}

func TestRewrite_CombinedLineWinsOverSeparateLines(t *testing.T) {
	t.Parallel()

	input := "import { api, internal } from \"../_generated/api\";\n" +
		"import { internal } from \"../_generated/api\";\n"
	res := genfix.Rewrite(input, "../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	// The single-name line survives untouched when a combined line exists.
	assert.Contains(t, res.Text, "import { internal } from \"../_generated/api\";")
	assert.Equal(t, 2, strings.Count(res.Text, genfix.Marker))
}

func TestRewrite_TypeQualifierTolerated(t *testing.T) {
	t.Parallel()

	input := "import type { internal } from '../_generated/api.ts';\n"
	res := genfix.Rewrite(input, "../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.Contains(t, res.Text, "const internal = require('../_generated/api').internal as any;")
}

func TestRewrite_TrailingCommentTolerated(t *testing.T) {
	t.Parallel()

	input := "import { api } from \"../_generated/api\"; // generated client\n"
	res := genfix.Rewrite(input, "../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.NotContains(t, res.Text, "import { api }")
}

func TestRewrite_UnrelatedNameGuard(t *testing.T) {
	t.Parallel()

	input := "import { internalFoo } from \"../_generated/api\";\nimport { apiKey } from \"../_generated/api\";\n"
	res := genfix.Rewrite(input, "../_generated/api")

	assert.Equal(t, genfix.SkippedNoMatch, res.Outcome)
	assert.Equal(t, input, res.Text)
}

func TestRewrite_RepeatedLines_AllReplaced(t *testing.T) {
	t.Parallel()

	input := "import { internal } from \"../_generated/api\";\n" +
		"const a = 1;\n" +
		"import { internal } from \"../../_generated/api\";\n"
	res := genfix.Rewrite(input, "../_generated/api")

	require.Equal(t, genfix.Fixed, res.Outcome)
	assert.NotContains(t, res.Text, "import { internal }")
	assert.Equal(t, 2, strings.Count(res.Text, "const internal = require('../_generated/api').internal as any;"))
}

func TestRewrite_Idempotent(t *testing.T) {
	t.Parallel()

	input := "import { api, internal } from \"./_generated/api\";\n"
	first := genfix.Rewrite(input, "./_generated/api")
	require.Equal(t, genfix.Fixed, first.Outcome)

	second := genfix.Rewrite(first.Text, "./_generated/api")
	assert.Equal(t, genfix.SkippedPatched, second.Outcome)
	assert.Equal(t, first.Text, second.Text)
}

func TestRewrite_MarkerShortCircuitsHandEditedFiles(t *testing.T) {
	t.Parallel()

	// The marker guard runs before any matching, even when a qualifying
	// import was re-added by hand.
	input := "// " + genfix.Marker + ": api is bound at runtime\n" +
		"import { internal } from \"../_generated/api\";\n"
	res := genfix.Rewrite(input, "../_generated/api")

	assert.Equal(t, genfix.SkippedPatched, res.Outcome)
	assert.Equal(t, input, res.Text)
}

func TestHasInternalImport(t *testing.T) {
	t.Parallel()

	assert.True(t, genfix.HasInternalImport("import { internal } from \"../_generated/api\";\n"))
	assert.True(t, genfix.HasInternalImport("import type { internal, api } from '../_generated/api.js'\n"))
	assert.False(t, genfix.HasInternalImport("import { internalFoo } from \"../_generated/api\";\n"))
	assert.False(t, genfix.HasInternalImport("import { internal } from \"./other/module\";\n"))
}

func TestHasAPIImport(t *testing.T) {
	t.Parallel()

	assert.True(t, genfix.HasAPIImport("import { api } from \"../_generated/api\"\n"))
	assert.False(t, genfix.HasAPIImport("import { apiKey } from \"../_generated/api\";\n"))
}
