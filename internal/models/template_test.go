package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateInfo(t *testing.T) {
	tmpl, ok := TemplateInfo("french-door")
	assert.True(t, ok)
	assert.Equal(t, "French Door", tmpl.Name)

	_, ok = TemplateInfo("walk-in")
	assert.False(t, ok)
}

func TestTemplateInstantiateMatchesTypeList(t *testing.T) {
	tmpl, ok := TemplateInfo("french-door")
	assert.True(t, ok)
	assert.Equal(t, InstancesFromTypeList(tmpl.Layout), tmpl.Instantiate())

	// Two refrigerators get distinct ordinals.
	instances := tmpl.Instantiate()
	assert.Equal(t, "refrigerator-1", instances[0].ID)
	assert.Equal(t, "refrigerator-2", instances[1].ID)
}
