// Package notes извлекает факты предзаказа из свободного текста
// примечаний к заказу.
package notes

import (
	"strings"
	"time"

	"skusync/internal/entities"
)

const preorderDateLayout = "1/2/2006"

// Строки позиций начинаются с известного префикса SKU.
var defaultSKUPrefixes = []string{"CL-", "CA-", "SC-", "CN-", "CC-"}

// Метки, за которыми идёт дата предзаказа в формате MM/DD/YYYY либо
// литерал "null".
var defaultDateLabels = []string{"Preorder / Ship Date:", "Preorder Date:"}

// Parser — однопроходный построчный разбор примечаний. Конфигурация
// неизменяема после создания, парсер безопасен для конкурентного
// использования.
type Parser struct {
	skuPrefixes  []string
	dateLabels   []string
	warehouseLoc *time.Location
	shipHour     int
}

func NewParser(warehouseLoc *time.Location, shipHour int) *Parser {
	return &Parser{
		skuPrefixes:  defaultSKUPrefixes,
		dateLabels:   defaultDateLabels,
		warehouseLoc: warehouseLoc,
		shipHour:     shipHour,
	}
}

// Parse возвращает по одному факту на каждую распознанную позицию.
// Нераспознанные строки пропускаются. Если ни одной позиции не нашлось,
// возвращается ровно один факт "не предзаказ": у агрегации ниже по
// потоку всегда есть хотя бы один вход.
func (p *Parser) Parse(notesText string) []entities.LineItemPreorderFact {
	var facts []entities.LineItemPreorderFact
	var current *entities.LineItemPreorderFact

	for _, raw := range strings.Split(notesText, "\n") {
		line := strings.TrimSpace(raw)

		if p.startsLineItem(line) {
			if current != nil {
				facts = append(facts, *current)
			}
			current = &entities.LineItemPreorderFact{}
			continue
		}

		if current == nil {
			continue
		}

		if value, ok := p.dateLabelValue(line); ok {
			if value == "" || strings.EqualFold(value, "null") {
				continue
			}

			// Значение есть — позиция предзаказная, даже если дату
			// прочитать не удалось: такие позиции ничего не вносят в
			// агрегацию, но и не роняют разбор.
			current.Preorder = true
			if parsed, err := time.ParseInLocation(preorderDateLayout, value, p.warehouseLoc); err == nil {
				normalized := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), p.shipHour, 0, 0, 0, p.warehouseLoc)
				current.PreorderDate = &normalized
			}
		}
	}

	if current != nil {
		facts = append(facts, *current)
	}

	if len(facts) == 0 {
		facts = append(facts, entities.LineItemPreorderFact{})
	}

	return facts
}

func (p *Parser) startsLineItem(line string) bool {
	for _, prefix := range p.skuPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func (p *Parser) dateLabelValue(line string) (string, bool) {
	for _, label := range p.dateLabels {
		if strings.HasPrefix(line, label) {
			return strings.TrimSpace(line[len(label):]), true
		}
	}
	return "", false
}
