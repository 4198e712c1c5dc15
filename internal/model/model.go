// Package model contains data structures for the resolved launch configuration and the DTO of serve-mode
package model

type AppMode string

const (
	ModeSearch = AppMode("search")
	ModeServe  = AppMode("serve")
)

const (
	DefaultServerAddress = ":8080"
	IgnoreCaseEnv        = "IGNORE_CASE"
)

// CasePolicy - выбирает, приводится ли регистр перед проверкой вхождения
type CasePolicy int

const (
	CaseSensitive CasePolicy = iota
	CaseInsensitive
)

func (c CasePolicy) String() string {
	switch c {
	case CaseInsensitive:
		return "insensitive"
	default:
		return "sensitive"
	}
}

// PolicyFor переводит булев флаг ignore-case в CasePolicy
func PolicyFor(ignoreCase bool) CasePolicy {
	if ignoreCase {
		return CaseInsensitive
	}
	return CaseSensitive
}

// Config - итоговая конфигурация запуска, собирается один раз при старте
type Config struct {
	Mode       AppMode
	Query      string
	FilePath   string
	CasePolicy CasePolicy
	Address    string // только для режима serve
	Verbose    bool
}

// SearchTask - задание на поиск, приходит в теле POST /search
type SearchTask struct {
	TaskID     string `json:"tid"`
	Query      string `json:"query"`
	IgnoreCase bool   `json:"ignore_case"`
	Corpus     string `json:"corpus"`
}

// SearchResult - найденные строки в исходном порядке плюс хеш вывода
type SearchResult struct {
	TaskID string   `json:"tid"`
	Hash   uint64   `json:"hash"`
	Output []string `json:"output"`
}
