package coerce

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"property-graph/primitive"
)

func TestCompatibility_String(t *testing.T) {
	tests := []struct {
		compat   Compatibility
		expected string
	}{
		{Identical, "identical"},
		{Assignable, "assignable"},
		{Convertible, "convertible"},
		{NeedsCoercion, "needs_coercion"},
		{Incompatible, "incompatible"},
		{Compatibility(42), "Compatibility(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.compat.String())
		})
	}
}

func TestScore(t *testing.T) {
	type name string

	tests := []struct {
		name       string
		source     reflect.Type
		target     reflect.Type
		categories primitive.CategoryEnum
		expected   Compatibility
	}{
		{"identical", reflect.TypeFor[int](), reflect.TypeFor[int](), primitive.CategoryAll, Identical},
		{"assignable to interface", reflect.TypeFor[int](), reflect.TypeFor[any](), primitive.CategoryAll, Assignable},
		{"same layout structs", reflect.TypeFor[point](), reflect.TypeFor[vector](), primitive.CategoryAll, Convertible},
		{"text to number", reflect.TypeFor[string](), reflect.TypeFor[int](), primitive.CategoryAll, NeedsCoercion},
		{"text to number disabled", reflect.TypeFor[string](), reflect.TypeFor[int](), primitive.CategorySafeNumber, Incompatible},
		{"widening", reflect.TypeFor[int8](), reflect.TypeFor[int64](), primitive.CategorySafeNumber, NeedsCoercion},
		{"pointer target", reflect.TypeFor[int](), reflect.TypeFor[*int](), primitive.CategoryAll, NeedsCoercion},
		{"pointer source", reflect.TypeFor[*string](), reflect.TypeFor[string](), primitive.CategoryAll, NeedsCoercion},
		{"text unmarshaler", reflect.TypeFor[string](), reflect.TypeFor[uuid.UUID](), primitive.CategoryAll, NeedsCoercion},
		{"stringer", reflect.TypeFor[uuid.UUID](), reflect.TypeFor[string](), primitive.CategoryAll, NeedsCoercion},
		{"named string", reflect.TypeFor[string](), reflect.TypeFor[name](), primitive.CategoryAll, NeedsCoercion},
		{"slice elements", reflect.TypeFor[[]string](), reflect.TypeFor[[]int](), primitive.CategoryAll, NeedsCoercion},
		{"interface source", reflect.TypeFor[any](), reflect.TypeFor[int](), primitive.CategoryAll, NeedsCoercion},
		{"bool to struct", reflect.TypeFor[bool](), reflect.TypeFor[point](), primitive.CategoryAll, Incompatible},
		{"nil", nil, reflect.TypeFor[int](), primitive.CategoryAll, Incompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.source, tt.target, tt.categories))
		})
	}
}
