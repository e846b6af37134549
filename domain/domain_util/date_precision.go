package domain_util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	PrecisionYear = "year"
	PrecisionFull = "full"
)

const (
	dateInputLayout   = "2006-01-02"
	dateDisplayLayout = "2 January 2006"
)

var yearInputPattern = regexp.MustCompile(`^\d{4}$`)

// NormalizePrecision 缺省或未知精度按 full 处理（兼容旧文档）
func NormalizePrecision(precision string) string {
	if precision == PrecisionYear {
		return PrecisionYear
	}
	return PrecisionFull
}

// FormatRecordingDate 展示录制日期：year 精度只显示发行年份；无日期时退回年份；都没有则为空串
func FormatRecordingDate(recordingDate *time.Time, releaseYear int, precision string) string {
	if NormalizePrecision(precision) == PrecisionYear {
		return formatYear(releaseYear)
	}
	if recordingDate != nil && !recordingDate.IsZero() {
		return recordingDate.UTC().Format(dateDisplayLayout)
	}
	return formatYear(releaseYear)
}

func formatYear(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// FormatRecordingDateInput 编辑表单回填：year -> "1995"，full -> "2023-04-10"
func FormatRecordingDateInput(recordingDate *time.Time, precision string) string {
	if recordingDate == nil || recordingDate.IsZero() {
		return ""
	}
	if NormalizePrecision(precision) == PrecisionYear {
		return strconv.Itoa(recordingDate.UTC().Year())
	}
	return recordingDate.UTC().Format(dateInputLayout)
}

// ParseRecordingDateInput 解析表单输入；year 精度归一到当年 1 月 1 日。
// 输入为空或非法时退回 now 及其年份。
func ParseRecordingDateInput(raw, precision string, now time.Time) (time.Time, int) {
	raw = strings.TrimSpace(raw)
	now = now.UTC()
	if raw == "" {
		return now, now.Year()
	}

	if NormalizePrecision(precision) == PrecisionYear {
		if !yearInputPattern.MatchString(raw) {
			return now, now.Year()
		}
		year, _ := strconv.Atoi(raw)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), year
	}

	parsed, err := time.Parse(dateInputLayout, raw)
	if err != nil {
		return now, now.Year()
	}
	return parsed, parsed.Year()
}

// ConvertDateInputPrecision 切换精度时转换已填写的输入：full 切到 year 截取年份
func ConvertDateInputPrecision(raw, newPrecision string) string {
	if NormalizePrecision(newPrecision) == PrecisionYear && strings.Contains(raw, "-") {
		return strings.SplitN(raw, "-", 2)[0]
	}
	return raw
}
