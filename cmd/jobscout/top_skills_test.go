package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTopSkillsCSV_DerivedFromTitle(t *testing.T) {
	assert.Equal(t, "skills_data-engineer.csv", defaultTopSkillsCSV("data engineer"))
	assert.Equal(t, "skills_golang.csv", defaultTopSkillsCSV("golang"))
}
