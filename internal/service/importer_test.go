package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContentFile(t *testing.T, dir, sub, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, sub, name), []byte(content), 0o644))
}

func TestImportDir(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "stories", "mindful-eating.md", `---
title: Mindful Eating
category: wellness
date: "2025-03-01"
author: Jo
read_time: 5 min
featured: true
tags:
  - wellness
  - habits
---
First paragraph.

Second paragraph.
`)
	writeContentFile(t, dir, "recipes", "oat-bowl.md", `---
title: Oat Bowl
category: breakfast
cooking_time: 10 min
calories: 320
tags: oats,quick
---
Step one.

Step two.
`)

	stories := &fakeStoryRepository{}
	recipes := &fakeRecipeRepository{}
	svc := NewImporterService(stories, recipes)

	require.NoError(t, svc.ImportDir(dir))

	story, err := stories.BySlug("mindful-eating")
	require.NoError(t, err)
	assert.Equal(t, "Mindful Eating", story.Title)
	assert.Equal(t, "wellness", story.Category)
	assert.Equal(t, "wellness,habits", story.Tags)
	assert.True(t, story.Featured)
	require.NotNil(t, story.ReadTime)
	assert.Equal(t, "5 min", *story.ReadTime)
	assert.Contains(t, story.Content, "First paragraph.")
	assert.NotContains(t, story.Content, "title:")

	recipe, err := recipes.BySlug("oat-bowl")
	require.NoError(t, err)
	assert.Equal(t, 320, recipe.Calories)
	assert.Equal(t, "oats,quick", recipe.Tags)
}

func TestImportDir_TitleFallsBackToSlug(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "recipes", "green-power-smoothie.md", "Blend everything.\n")

	recipes := &fakeRecipeRepository{}
	svc := NewImporterService(&fakeStoryRepository{}, recipes)

	require.NoError(t, svc.ImportDir(dir))

	recipe, err := recipes.BySlug("green-power-smoothie")
	require.NoError(t, err)
	assert.Equal(t, "Green Power Smoothie", recipe.Title)
}

func TestImportDir_ReimportReplacesBySlug(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "recipes", "oat-bowl.md", "---\ntitle: v1\ncalories: 300\n---\nBody.\n")

	recipes := &fakeRecipeRepository{}
	svc := NewImporterService(&fakeStoryRepository{}, recipes)
	require.NoError(t, svc.ImportDir(dir))

	writeContentFile(t, dir, "recipes", "oat-bowl.md", "---\ntitle: v2\ncalories: 350\n---\nBody.\n")
	require.NoError(t, svc.ImportDir(dir))

	assert.Len(t, recipes.recipes, 1)
	recipe, err := recipes.BySlug("oat-bowl")
	require.NoError(t, err)
	assert.Equal(t, "v2", recipe.Title)
	assert.Equal(t, 350, recipe.Calories)
}

func TestImportDir_MissingSubdirsAreFine(t *testing.T) {
	svc := NewImporterService(&fakeStoryRepository{}, &fakeRecipeRepository{})
	assert.NoError(t, svc.ImportDir(t.TempDir()))
}
