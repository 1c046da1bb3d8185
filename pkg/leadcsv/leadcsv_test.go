package leadcsv

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
)

func TestSplitFieldsQuoteAware(t *testing.T) {
	parts := SplitFields(`name,phone,email,"Product A, Product B",2024-01-20 10:00:00,New,`)

	require.Len(t, parts, 7)
	assert.Equal(t, "Product A, Product B", parts[3])
	assert.Equal(t, "", parts[6])
}

func TestParseReturnsRecordsInOrder(t *testing.T) {
	csv := Header + "\n" +
		"Иванов Иван,79001234567,ivanov@example.com,miniSIGMA,2024-01-20 10:00:00,Новая,\n" +
		"Петров Пётр,79007654321,petrov@example.com,Автопилот АП-05,2024-01-21 11:00:00,В работе,Срочный заказ"

	requests := Parse(csv)

	require.Len(t, requests, 2)
	assert.Equal(t, "Иванов Иван", requests[0].FullName)
	assert.Equal(t, "Петров Пётр", requests[1].FullName)
	for _, req := range requests {
		assert.NotEqual(t, uuid.Nil, req.ID)
	}
	assert.NotEqual(t, requests[0].ID, requests[1].ID)
	assert.Equal(t, enum.RequestStatusInProgress, requests[1].Status)
	assert.Equal(t, "Срочный заказ", requests[1].Comments)
}

func TestParseQuotedProductList(t *testing.T) {
	csv := Header + "\n" +
		`Иванов Иван,79001234567,ivanov@example.com,"miniSIGMA, Автопилот АП-05",2024-01-20 10:00:00,Новая,`

	requests := Parse(csv)

	require.Len(t, requests, 1)
	assert.Equal(t, []string{"miniSIGMA", "Автопилот АП-05"}, requests[0].Products)
}

func TestParseSingleProductWithoutQuotes(t *testing.T) {
	csv := Header + "\n" +
		"Иванов Иван,79001234567,ivanov@example.com, miniSIGMA ,2024-01-20 10:00:00,Новая,"

	requests := Parse(csv)

	require.Len(t, requests, 1)
	assert.Equal(t, []string{"miniSIGMA"}, requests[0].Products)
}

func TestParseStatusDefaultsToNew(t *testing.T) {
	csv := Header + "\n" +
		"Иванов Иван,79001234567,ivanov@example.com,miniSIGMA,2024-01-20 10:00:00,,"

	requests := Parse(csv)

	require.Len(t, requests, 1)
	assert.Equal(t, enum.RequestStatusNew, requests[0].Status)
}

func TestParseSkipsBlankLinesAndEmptyNames(t *testing.T) {
	csv := Header + "\n" +
		"\n" +
		"Иванов Иван,79001234567,ivanov@example.com,miniSIGMA,2024-01-20 10:00:00,Новая,\n" +
		"   \n" +
		",79009999999,noname@example.com,miniSIGMA,2024-01-20 10:00:00,Новая,\n"

	requests := Parse(csv)

	require.Len(t, requests, 1)
	assert.Equal(t, "Иванов Иван", requests[0].FullName)
}

func TestParseQuestionnaireBlock(t *testing.T) {
	csv := Header + ",Тип оборудования,Основные задачи,Полет,Дальность,Груз,VTOL,Данные,Стаб,Видео,Тяжелые,Автоматизация,Подготовка,Температура,Ветер,Ночь,Без связи,Компоненты,ПДУ,Комплектация,Страна\n" +
		`Иванов Иван,79001234567,ivanov@example.com,"miniSIGMA, Автопилот АП-05",2024-04-17 10:00:00,Новая,,` +
		`Готовый к полету беспилотник (БПЛА),"Мониторинг территории;Аэрофотосъемка",До 30 минут,До 2 км,До 1 кг,Да,` +
		`"Видео;Фото",Да,Да,Нет,"Полет по маршруту;Автономная работа",Да,Стандартный,До 10 м/с,Нет,Нет,` +
		`"Автопилот;Система связи","Портативный;Встроенный экран","Не менее 4 аккумуляторов;Зарядный хаб",Российская Федерация`

	requests := Parse(csv)

	require.Len(t, requests, 1)
	qa := requests[0].QuestionnaireAnswers
	require.NotNil(t, qa)
	assert.Equal(t, "Готовый к полету беспилотник (БПЛА)", qa.EquipmentType)
	assert.Equal(t, []string{"Мониторинг территории", "Аэрофотосъемка"}, qa.MainTasks)
	assert.True(t, qa.VTOL)
	assert.True(t, qa.Stabilization)
	assert.True(t, qa.RealtimeVideo)
	assert.False(t, qa.RealtimeHeavyData)
	assert.False(t, qa.NightFlights)
	assert.Equal(t, []string{"Портативный", "Встроенный экран"}, qa.RemoteControlFeatures)
	assert.Equal(t, "Российская Федерация", qa.CountryOfOrigin)
}

func TestParseWithoutQuestionnaireBlock(t *testing.T) {
	csv := Header + "\n" +
		"Иванов Иван,79001234567,ivanov@example.com,miniSIGMA,2024-01-20 10:00:00,Новая,"

	requests := Parse(csv)

	require.Len(t, requests, 1)
	assert.Nil(t, requests[0].QuestionnaireAnswers)
}

func TestSerializeAlwaysQuotesProductList(t *testing.T) {
	out := Serialize([]entity.CustomerRequest{{
		FullName:    "Иванов Иван",
		PhoneNumber: "79001234567",
		Email:       "ivanov@example.com",
		Products:    []string{"miniSIGMA"},
		Timestamp:   "2024-01-20 10:00:00",
		Status:      enum.RequestStatusNew,
	}})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Contains(t, lines[1], `"miniSIGMA"`)
}

func TestRoundTripWithoutQuestionnaireIsFixedPoint(t *testing.T) {
	original := entity.CustomerRequest{
		FullName:    "Иванов Иван",
		PhoneNumber: "79001234567",
		Email:       "ivanov@example.com",
		Products:    []string{"miniSIGMA", "Автопилот АП-05"},
		Timestamp:   "2024-01-20 10:00:00",
		Status:      enum.RequestStatusInProgress,
		Comments:    "Запрос цены",
	}

	parsed := Parse(Serialize([]entity.CustomerRequest{original}))

	require.Len(t, parsed, 1)
	got := parsed[0]
	assert.Equal(t, original.FullName, got.FullName)
	assert.Equal(t, original.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, original.Email, got.Email)
	assert.Equal(t, original.Products, got.Products)
	assert.Equal(t, original.Timestamp, got.Timestamp)
	assert.Equal(t, original.Status, got.Status)
	assert.Equal(t, original.Comments, got.Comments)
}

func TestRoundTripDropsQuestionnaire(t *testing.T) {
	original := entity.CustomerRequest{
		FullName:  "Иванов Иван",
		Products:  []string{"miniSIGMA"},
		Timestamp: "2024-01-20 10:00:00",
		Status:    enum.RequestStatusNew,
		QuestionnaireAnswers: &entity.QuestionnaireAnswers{
			EquipmentType: "Готовый к полету беспилотник (БПЛА)",
			MainTasks:     []string{"Аэрофотосъемка"},
			VTOL:          true,
		},
	}

	parsed := Parse(Serialize([]entity.CustomerRequest{original}))

	require.Len(t, parsed, 1)
	assert.Nil(t, parsed[0].QuestionnaireAnswers)
}
