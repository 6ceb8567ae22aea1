package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_SetKeepsFirstPosition(t *testing.T) {
	var r Row
	r.Set("b", "1")
	r.Set("a", "2")
	r.Set("b", "3")

	assert.Equal(t, []string{"b", "a"}, r.Keys())
	assert.Equal(t, "3", r.Value("b"))
	assert.Equal(t, 2, r.Len())
}

func TestRow_ZeroValue(t *testing.T) {
	var r Row

	_, ok := r.Get("url")
	assert.False(t, ok)
	assert.Equal(t, "", r.Value("url"))
	assert.Empty(t, r.Keys())
}

func TestNewRow_ShortValues(t *testing.T) {
	r := NewRow([]string{"a", "b", "c"}, []string{"1", "2"})

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	_, ok := r.Get("c")
	assert.False(t, ok)
}

func TestRow_KeysReturnsCopy(t *testing.T) {
	r := NewRow([]string{"a"}, []string{"1"})
	keys := r.Keys()
	keys[0] = "changed"

	assert.Equal(t, []string{"a"}, r.Keys())
}

func TestError_IsKind(t *testing.T) {
	cause := errors.New("permission denied")
	err := fmt.Errorf("convert: %w", &Error{Kind: KindSinkWrite, Op: "failed to write output", Path: "inputs.yaml", Err: cause})

	assert.True(t, errors.Is(err, KindSinkWrite))
	assert.False(t, errors.Is(err, KindSourceRead))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindSinkWrite, KindOf(err))
	assert.Equal(t, "convert: inputs.yaml: failed to write output: permission denied", err.Error())
}

func TestError_DefaultsToKindMessage(t *testing.T) {
	err := NewError(KindEmptySelection, "", nil)

	assert.Equal(t, "no keys selected", err.Error())
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKind_ExitCodesAreDistinctAndNonZero(t *testing.T) {
	kinds := []Kind{KindType, KindSourceRead, KindEmptySchema, KindEmptySelection, KindSinkWrite, KindConfig, KindAborted}

	seen := map[int]Kind{}
	for _, k := range kinds {
		code := k.ExitCode()
		assert.NotZero(t, code, k.String())
		_, dup := seen[code]
		assert.False(t, dup, "exit code %d reused by %s", code, k)
		seen[code] = k
	}
	assert.Equal(t, 1, KindUnknown.ExitCode())
}
