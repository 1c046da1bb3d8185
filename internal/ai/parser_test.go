package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResponseTagsAndMessage(t *testing.T) {
	raw := "searchParamIDs: [\"a\", \"b\"]\nОтвет пользователю: текст"

	resp := ParseResponse(raw)

	assert.Equal(t, []string{"a", "b"}, resp.SearchParamIDs)
	assert.Equal(t, "текст", resp.Message)
}

func TestParseResponseFullFormat(t *testing.T) {
	raw := `Параметры:
    searchParamIDs: ["тип_бпла", 'задача_аэрофотосъемка', бпла_мультикоптер]
    Ответ пользователю: Для аэрофотосъемки вам подойдет мультикоптер.
Он может работать до 30 минут.`

	resp := ParseResponse(raw)

	assert.Equal(t, []string{"тип_бпла", "задача_аэрофотосъемка", "бпла_мультикоптер"}, resp.SearchParamIDs)
	assert.Equal(t, "Для аэрофотосъемки вам подойдет мультикоптер.\nОн может работать до 30 минут.", resp.Message)
}

func TestParseResponseEmptyTagList(t *testing.T) {
	raw := "searchParamIDs: []\nОтвет пользователю: Не можем автоматически определить ваши потребности."

	resp := ParseResponse(raw)

	assert.Empty(t, resp.SearchParamIDs)
	assert.Equal(t, "Не можем автоматически определить ваши потребности.", resp.Message)
}

func TestParseResponseNoMarkers(t *testing.T) {
	resp := ParseResponse("просто текст без маркеров")

	assert.Empty(t, resp.SearchParamIDs)
	assert.Equal(t, FallbackMessage, resp.Message)
}

func TestParseResponseTagsWithoutMessage(t *testing.T) {
	resp := ParseResponse(`searchParamIDs: ["тип_камера"]`)

	assert.Equal(t, []string{"тип_камера"}, resp.SearchParamIDs)
	assert.Equal(t, FallbackMessage, resp.Message)
}

func TestParseResponseDropsEmptyTags(t *testing.T) {
	resp := ParseResponse(`searchParamIDs: ["a", "", '', ]` + "\nОтвет пользователю: ок")

	assert.Equal(t, []string{"a"}, resp.SearchParamIDs)
}
