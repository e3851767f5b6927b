package dialog

import (
	"fmt"
	"strings"
	"time"

	"github.com/Heaven123321/tekbir-backend/internal/domain/products"
)

// Step — шаг сценария добавления товара. Порядок жёсткий,
// каждый текстовый шаг принимает ровно один ввод.
type Step string

const (
	StepName        Step = "name"
	StepPrice       Step = "price"
	StepCategory    Step = "category"
	StepCondition   Step = "condition"
	StepCapacity    Step = "capacity"
	StepColor       Step = "color"
	StepDescription Step = "description"
	StepPhotos      Step = "photos"
	StepConfirm     Step = "confirm"
)

// DoneWord завершает приём фото.
const DoneWord = "готово"

// Draft — накопленные поля нового товара.
type Draft struct {
	Name        string
	Price       string
	Category    string
	Condition   string
	Capacity    string
	Color       string
	Description string
	Photos      []string
}

// Session — активный диалог добавления товара одного админа.
type Session struct {
	Step  Step
	Draft Draft
}

func NewSession() *Session {
	return &Session{Step: StepName}
}

// Reply — что ответить админу после обработки ввода.
type Reply struct {
	Text string
	// Confirm — показать клавиатуру «Добавить / Отмена».
	Confirm bool
}

// StartPrompt — первый вопрос сценария.
const StartPrompt = "Введите название товара:"

// Advance обрабатывает один текстовый ввод админа и двигает сценарий.
// Значения сохраняются как есть (после TrimSpace); «-» на шаге памяти
// означает «без памяти». На шаге фото принимается только слово «готово»,
// и только если собрано хотя бы одно фото.
func (s *Session) Advance(text string) Reply {
	value := strings.TrimSpace(text)

	switch s.Step {
	case StepName:
		s.Draft.Name = value
		s.Step = StepPrice
		return Reply{Text: "Введите цену товара:"}

	case StepPrice:
		s.Draft.Price = value
		s.Step = StepCategory
		return Reply{Text: "Введите категорию:"}

	case StepCategory:
		s.Draft.Category = value
		s.Step = StepCondition
		return Reply{Text: "Введите состояние (Новый / Б/У):"}

	case StepCondition:
		s.Draft.Condition = value
		s.Step = StepCapacity
		return Reply{Text: "Введите память (например 128GB) или '-' если памяти нет:"}

	case StepCapacity:
		if value == "-" {
			value = ""
		}
		s.Draft.Capacity = value
		s.Step = StepColor
		return Reply{Text: "Введите цвет товара:"}

	case StepColor:
		s.Draft.Color = value
		s.Step = StepDescription
		return Reply{Text: "Введите описание товара:"}

	case StepDescription:
		s.Draft.Description = value
		s.Step = StepPhotos
		return Reply{Text: "Теперь отправьте одно или несколько фото товара.\n\nКогда закончите — отправьте сообщение: «готово»"}

	case StepPhotos:
		if strings.ToLower(value) != DoneWord {
			return Reply{Text: "Отправьте фото товара. Когда закончите — напишите «готово»."}
		}
		if len(s.Draft.Photos) == 0 {
			return Reply{Text: "❗ Вы ещё не добавили ни одного фото. Отправьте хотя бы одно фото товара."}
		}
		s.Step = StepConfirm
		return Reply{Text: s.Summary(), Confirm: true}
	}

	// StepConfirm: текст не обрабатывается, решение принимается кнопками.
	return Reply{}
}

// AddPhoto добавляет ссылку на фото; учитывается только на шаге фото.
// Возвращает количество собранных фото.
func (s *Session) AddPhoto(url string) (int, bool) {
	if s.Step != StepPhotos {
		return len(s.Draft.Photos), false
	}
	s.Draft.Photos = append(s.Draft.Photos, url)
	return len(s.Draft.Photos), true
}

func (s *Session) Summary() string {
	d := s.Draft
	return fmt.Sprintf(
		"📦 Новый товар:\n\n"+
			"Название: %s\n"+
			"Цена: %s\n"+
			"Категория: %s\n"+
			"Состояние: %s\n"+
			"Память: %s\n"+
			"Цвет: %s\n"+
			"Описание: %s\n"+
			"Фото: %d шт.",
		d.Name, d.Price, d.Category, d.Condition,
		orDash(d.Capacity), orDash(d.Color), orDash(d.Description),
		len(d.Photos),
	)
}

// Product собирает итоговый товар: новый id по текущему времени,
// количество 1, статус «Свободен».
func (s *Session) Product(now time.Time) products.Product {
	d := s.Draft
	return products.Product{
		ID:          products.NewID(now),
		Name:        d.Name,
		Price:       d.Price,
		Category:    d.Category,
		Condition:   d.Condition,
		Capacity:    d.Capacity,
		PhotoURLs:   append([]string(nil), d.Photos...),
		Description: d.Description,
		Color:       d.Color,
		Quantity:    1,
		Status:      products.StatusFree,
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
