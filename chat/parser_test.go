package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionsNumberedList(t *testing.T) {
	sections := ParseSections("1. Apples\n2. Oranges\n3. Bananas", "fruit")
	assert.Equal(t, []string{"Apples", "Oranges", "Bananas"}, sections)
}

func TestParseSectionsFiltersBannedPhrases(t *testing.T) {
	text := "Let's explore space!\n" +
		"1. What is a star?\n" +
		"2. Welcome to astronomy\n" +
		"3. How galaxies form\n" +
		"4. Black holes\n" +
		"5. The Big Bang"

	sections := ParseSections(text, "space")
	assert.Equal(t, []string{"What is a star?", "How galaxies form", "Black holes", "The Big Bang"}, sections)
}

func TestParseSectionsBoldMarkersStripped(t *testing.T) {
	sections := ParseSections("**1. Volcano anatomy**\n**2. Lava and magma**\n**3. Eruption styles**", "volcanoes")
	assert.Equal(t, []string{"Volcano anatomy", "Lava and magma", "Eruption styles"}, sections)
}

func TestParseSectionsBulletedList(t *testing.T) {
	sections := ParseSections("• Coral reefs\n• Deep sea trenches\n• Ocean currents\n• Tides and waves", "ocean")
	assert.Equal(t, []string{"Coral reefs", "Deep sea trenches", "Ocean currents", "Tides and waves"}, sections)
}

func TestParseSectionsNumberedTakesPriorityOverBullets(t *testing.T) {
	text := "1. First section\n2. Second section\n3. Third section\n- stray bullet one\n- stray bullet two\n- stray bullet three"
	sections := ParseSections(text, "mix")
	assert.Equal(t, []string{"First section", "Second section", "Third section"}, sections)
}

func TestParseSectionsCapsAtFive(t *testing.T) {
	text := "1. One\n2. Two\n3. Three\n4. Four\n5. Five\n6. Six\n7. Seven"
	sections := ParseSections(text, "numbers")
	assert.Len(t, sections, 5)
}

func TestParseSectionsFallsBackToTemplate(t *testing.T) {
	sections := ParseSections("nothing useful here", "volcanoes")
	require.Len(t, sections, 5)
	assert.Equal(t, FallbackSections("volcanoes"), sections)
}

func TestParseSectionsTemplateAfterFilterStarves(t *testing.T) {
	// three candidates parse but two are banned, leaving fewer than the
	// minimum, so the template takes over
	text := "1. Welcome aboard\n2. Introduction time\n3. Real content"
	sections := ParseSections(text, "space travel")
	assert.Equal(t, FallbackSections("space travel"), sections)
}

func TestFallbackSectionsKeyedByTopicKeyword(t *testing.T) {
	assert.Contains(t, FallbackSections("farm animals")[1], "live")
	assert.Contains(t, FallbackSections("outer space")[3], "rockets")
	assert.Contains(t, FallbackSections("bicycles")[0], "bicycles")
}

func TestParseTopicsEmptyInput(t *testing.T) {
	assert.Empty(t, ParseTopics(""))
	assert.Empty(t, ParseTopics("   \n  "))
}

func TestParseTopicsNumberedList(t *testing.T) {
	topics := ParseTopics("1. Comets\n2. Meteors\n3. Asteroids")
	assert.Equal(t, []string{"Comets", "Meteors", "Asteroids"}, topics)
}

func TestParseTopicsCommaSeparated(t *testing.T) {
	topics := ParseTopics("Comets, Meteors, Asteroids")
	assert.Equal(t, []string{"Comets", "Meteors", "Asteroids"}, topics)
}

func TestParseTopicsSemicolonSeparated(t *testing.T) {
	topics := ParseTopics("Comets; Meteors; Asteroids")
	assert.Equal(t, []string{"Comets", "Meteors", "Asteroids"}, topics)
}

func TestParseTopicsSingleSentence(t *testing.T) {
	topics := ParseTopics("The secret life of honeybees in winter")
	assert.Equal(t, []string{"The secret life of honeybees in winter"}, topics)
}

func TestParseTopicsStripsIntroLine(t *testing.T) {
	topics := ParseTopics("Here are some ideas:\n1. Comets\n2. Meteors")
	assert.Equal(t, []string{"Comets", "Meteors"}, topics)
}

func TestParseTopicsAppliesBannedFilter(t *testing.T) {
	topics := ParseTopics("1. Welcome to the list\n2. Meteors")
	assert.Equal(t, []string{"Meteors"}, topics)
}

func TestParseTopicsCapsAtFive(t *testing.T) {
	topics := ParseTopics("a1, b2, c3, d4, e5, f6, g7")
	assert.Len(t, topics, 5)
}
