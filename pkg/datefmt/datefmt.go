// Package datefmt рендерит time.Time по шаблонам с токенами в духе
// luxon ("LLL dd", "MM/dd/yyyy"). Токены транслируются в layout
// стандартного пакета time, всё остальное копируется как есть.
package datefmt

import (
	"strings"
	"time"
)

// Порядок важен: сначала длинные токены, иначе "dd" распадётся на два "d".
var tokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"LLLL", "January"},
	{"LLL", "Jan"},
	{"LL", "01"},
	{"L", "1"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"dd", "02"},
	{"d", "2"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSS", "000"},
	{"ZZZ", "-0700"},
	{"ZZ", "-07:00"},
	{"Z", "-07:00"},
	{"a", "PM"},
}

// Layout переводит luxon-шаблон в layout пакета time.
func Layout(format string) string {
	var b strings.Builder

	for len(format) > 0 {
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(format, t.token) {
				b.WriteString(t.layout)
				format = format[len(t.token):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Одинарные кавычки экранируют литеральный текст, как в luxon.
		if format[0] == '\'' {
			if end := strings.IndexByte(format[1:], '\''); end >= 0 {
				b.WriteString(format[1 : end+1])
				format = format[end+2:]
				continue
			}
			format = format[1:]
			continue
		}

		b.WriteByte(format[0])
		format = format[1:]
	}

	return b.String()
}

// Format рендерит t по luxon-шаблону.
func Format(t time.Time, format string) string {
	return t.Format(Layout(format))
}
