// Package i18n provides the fixed en/zh translation tables used by the CLI
// and TUI. Lookups fall back to English, then to the key itself, so a
// missing entry never breaks rendering.
package i18n

import "strings"

// Languages lists the supported locale tags.
var Languages = []string{"en", "zh"}

type table struct {
	strings  map[string]string
	weekdays [7]string
	months   [12]string
}

var tables = map[string]table{
	"en": {
		strings: map[string]string{
			"appName":             "Mosaic",
			"addThingPrompt":      "Add a new thing...",
			"noThings":            "Add your first thing to get started.",
			"archivedTitle":       "Archived Things",
			"noArchivedThings":    "No archived things.",
			"monthlyCheckins":     "Monthly Check-ins",
			"yearlyCheckins":      "Yearly Check-ins",
			"month":               "Month",
			"year":                "Year",
			"logged":              "Logged!",
			"logToday":            "Log Today",
			"noteLabel":           "Note",
			"notePlaceholder":     "Add a note about your progress...",
			"deleteLog":           "Delete Log",
			"saveLog":             "Save Log",
			"startNewThing":       "Track a New Thing",
			"importConfirmation":  "This will overwrite your current things. Are you sure you want to continue?",
			"importError":         "Failed to import things. Please check the file format.",
			"archiveConfirmation": "Archive this thing?",
			"deleteConfirmation":  "Delete this thing and all of its check-ins?",
			"language":            "Language",
		},
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	},
	"zh": {
		strings: map[string]string{
			"appName":             "Mosaic",
			"addThingPrompt":      "添加新事项...",
			"noThings":            "添加第一个要追踪的事项，开始记录吧。",
			"archivedTitle":       "已归档的事项",
			"noArchivedThings":    "没有已归档的事项。",
			"monthlyCheckins":     "本月打卡",
			"yearlyCheckins":      "今年打卡",
			"month":               "月",
			"year":                "年",
			"logged":              "已记录！",
			"logToday":            "记录今天",
			"noteLabel":           "备注",
			"notePlaceholder":     "记录一下你的进展...",
			"deleteLog":           "删除记录",
			"saveLog":             "保存记录",
			"startNewThing":       "追踪新事项",
			"importConfirmation":  "导入将覆盖当前的所有事项，确定继续吗？",
			"importError":         "导入失败，请检查文件格式。",
			"archiveConfirmation": "确定归档这个事项吗？",
			"deleteConfirmation":  "确定删除这个事项及其全部打卡记录吗？",
			"language":            "语言",
		},
		weekdays: [7]string{"日", "一", "二", "三", "四", "五", "六"},
		months:   [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	},
}

// Valid reports whether lang is a supported locale tag.
func Valid(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Normalize maps a locale tag onto a supported one, defaulting to English.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if Valid(lang) {
		return lang
	}
	return "en"
}

// T returns the translation for key in lang.
func T(lang, key string) string {
	if s, ok := tables[Normalize(lang)].strings[key]; ok {
		return s
	}
	if s, ok := tables["en"].strings[key]; ok {
		return s
	}
	return key
}

// Weekdays returns the short weekday labels for lang, Sunday first.
func Weekdays(lang string) [7]string {
	return tables[Normalize(lang)].weekdays
}

// Months returns the short month labels for lang, January first.
func Months(lang string) [12]string {
	return tables[Normalize(lang)].months
}
