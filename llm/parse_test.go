package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuizJSON = `{"question":"What is lava called underground?","options":["Magma","Steam","Ash","Mud"],"correctAnswer":0,"funFact":"Magma can sit in chambers for thousands of years."}`

func TestParseQuizPlainJSON(t *testing.T) {
	quiz, err := parseQuizResponse(validQuizJSON)
	require.NoError(t, err)
	assert.Equal(t, "What is lava called underground?", quiz.Question)
	assert.Equal(t, 0, quiz.CorrectAnswer)
	assert.Len(t, quiz.Options, 4)
}

func TestParseQuizCodeBlock(t *testing.T) {
	text := "Sure! Here it is:\n```json\n" + validQuizJSON + "\n```\nHave fun!"
	quiz, err := parseQuizResponse(text)
	require.NoError(t, err)
	assert.Equal(t, "Magma", quiz.Options[0])
}

func TestParseQuizEmbeddedInProse(t *testing.T) {
	text := "Here's your quiz: " + validQuizJSON + " Enjoy!"
	quiz, err := parseQuizResponse(text)
	require.NoError(t, err)
	assert.Equal(t, "What is lava called underground?", quiz.Question)
}

func TestParseQuizRejectsWrongOptionCount(t *testing.T) {
	_, err := parseQuizResponse(`{"question":"Q?","options":["a","b"],"correctAnswer":0}`)
	assert.Error(t, err)
}

func TestParseQuizRejectsOutOfRangeAnswer(t *testing.T) {
	_, err := parseQuizResponse(`{"question":"Q?","options":["a","b","c","d"],"correctAnswer":7}`)
	assert.Error(t, err)
}

func TestParseQuizNoJSON(t *testing.T) {
	_, err := parseQuizResponse("I could not come up with a quiz, sorry.")
	assert.Error(t, err)
}
