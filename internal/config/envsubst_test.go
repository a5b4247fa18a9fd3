package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars_Simple(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")

	content, missing := substituteEnvVars("value = ${TEST_VAR_SIMPLE}")
	assert.Equal(t, "value = hello", content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_Missing(t *testing.T) {
	// t.Setenv cannot truly unset, so use a name that is never set
	content, missing := substituteEnvVars("value = ${CITYPAPER_TEST_NONEXISTENT_VAR_12345}")
	assert.Equal(t, "value = ${CITYPAPER_TEST_NONEXISTENT_VAR_12345}", content)
	assert.Equal(t, []string{"CITYPAPER_TEST_NONEXISTENT_VAR_12345"}, missing)
}

func TestSubstituteEnvVars_SetButEmpty(t *testing.T) {
	t.Setenv("TEST_VAR_EMPTY", "")

	content, missing := substituteEnvVars("value = '${TEST_VAR_EMPTY}'")
	assert.Equal(t, "value = ''", content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_Default(t *testing.T) {
	// Empty counts as unset for :-
	t.Setenv("UNSET_VAR_DEFAULT", "")

	content, missing := substituteEnvVars("value = ${UNSET_VAR_DEFAULT:-default_value}")
	assert.Equal(t, "value = default_value", content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_DefaultOverriddenByEnv(t *testing.T) {
	t.Setenv("SET_VAR_OVERRIDE", "from_env")

	content, missing := substituteEnvVars("value = ${SET_VAR_OVERRIDE:-default}")
	assert.Equal(t, "value = from_env", content)
	assert.Empty(t, missing)
}

func TestSubstituteEnvVars_RequiredError(t *testing.T) {
	t.Setenv("REQUIRED_VAR_TEST", "")

	content, missing := substituteEnvVars("value = ${REQUIRED_VAR_TEST:?base url is required}")
	assert.Equal(t, "value = ${REQUIRED_VAR_TEST:?base url is required}", content)
	assert.Equal(t, []string{"REQUIRED_VAR_TEST: base url is required"}, missing)
}

func TestSubstituteEnvVars_Multiple(t *testing.T) {
	t.Setenv("VAR1_MULTI", "one")
	t.Setenv("VAR3_MULTI", "")

	content, missing := substituteEnvVars("${VAR1_MULTI} ${CITYPAPER_VAR2_NONEXISTENT} ${VAR3_MULTI:-three}")
	assert.Equal(t, "one ${CITYPAPER_VAR2_NONEXISTENT} three", content)
	assert.Equal(t, []string{"CITYPAPER_VAR2_NONEXISTENT"}, missing)
}

func TestSubstituteEnvVars_IgnoresComments(t *testing.T) {
	t.Setenv("TEST_VAR_COMMENT", "real")

	in := "# uses ${CITYPAPER_TEST_NONEXISTENT_IN_COMMENT}\n" +
		"value = \"${TEST_VAR_COMMENT}\" # or ${CITYPAPER_TEST_OTHER:?never checked}\n"
	content, missing := substituteEnvVars(in)

	assert.Empty(t, missing)
	assert.Equal(t, "# uses ${CITYPAPER_TEST_NONEXISTENT_IN_COMMENT}\n"+
		"value = \"real\" # or ${CITYPAPER_TEST_OTHER:?never checked}\n", content)
}

func TestSubstituteEnvVars_HashInsideString(t *testing.T) {
	t.Setenv("TEST_VAR_FRAGMENT", "top")

	content, missing := substituteEnvVars(`base_url = "https://x.example/#${TEST_VAR_FRAGMENT}" # note`)
	assert.Empty(t, missing)
	assert.Equal(t, `base_url = "https://x.example/#top" # note`, content)

	content, _ = substituteEnvVars(`title = 'a#b ${TEST_VAR_FRAGMENT}'`)
	assert.Equal(t, `title = 'a#b top'`, content)
}

func TestCommentStart(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"# all comment", 0},
		{`key = "v" # c`, 10},
		{`key = "a\"#b"`, 13},
		{`key = 'a#b'`, 11},
		{"key = 1", 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, commentStart(tt.line), tt.line)
	}
}
