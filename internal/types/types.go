// Package types defines the shared data types and error model for the
// ritual certificate printer.
package types

import "time"

// Field keys shared by the record store, the Excel importer and the
// print layout tables. The keys mirror the columns of the operator's
// source spreadsheet.
const (
	KeyName        = "name"        // Indonesian call name (NAMA)
	KeyDesignation = "designation" // Mandarin honorific designation 稱呼 (母親許門, 父親, 祖父)
	KeyMandarin    = "mandarin"    // Mandarin name of the deceased (梁氏橋玉)
	KeyRomanized   = "romanized"   // Hokkien romanization (Nio Kiaw Gek)
	KeySender      = "sender"      // sender / relationship 陽上 (孝男, 外孫女敬奉)
	KeyFamily      = "family"      // Indonesian family relation (Ibu Kandung)
	KeyRemark      = "remark"      // extra note (合家敬奉)
	KeyLunarYear   = "lunar_year"  // 太歲, e.g. 乙巳
	KeyLunarMonth  = "lunar_month" // e.g. 正月
	KeyLunarDay    = "lunar_day"   // e.g. 十五
)

// FieldValues maps a field key to the literal string to render for one
// print job. Missing keys render as empty runs.
type FieldValues map[string]string

// Get returns the value for key, or "" when absent.
func (v FieldValues) Get(key string) string {
	if v == nil {
		return ""
	}
	return v[key]
}

// Record is one stored certificate form.
type Record struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Mandarin    string    `json:"mandarin"`
	Romanized   string    `json:"romanized"`
	Sender      string    `json:"sender"`
	Family      string    `json:"family"`
	Remark      string    `json:"remark"`
	LunarYear   string    `json:"lunar_year"`
	LunarMonth  string    `json:"lunar_month"`
	LunarDay    string    `json:"lunar_day"`
	CreatedAt   time.Time `json:"created_at"`
}

// Values flattens the record into the field-value map the renderer consumes.
func (r Record) Values() FieldValues {
	return FieldValues{
		KeyName:        r.Name,
		KeyDesignation: r.Designation,
		KeyMandarin:    r.Mandarin,
		KeyRomanized:   r.Romanized,
		KeySender:      r.Sender,
		KeyFamily:      r.Family,
		KeyRemark:      r.Remark,
		KeyLunarYear:   r.LunarYear,
		KeyLunarMonth:  r.LunarMonth,
		KeyLunarDay:    r.LunarDay,
	}
}

// Config 应用配置
type Config struct {
	FontPaths    []string `json:"font_paths"`    // candidate CJK font files, checked in order
	TemplatePath string   `json:"template_path"` // background form template PDF; may be absent
	OutputDir    string   `json:"output_dir"`    // where generated PDFs are written
	DatabasePath string   `json:"database_path"` // SQLite file for stored records
	PageSize     string   `json:"page_size"`     // "a4" or "f4"
	LayoutName   string   `json:"layout"`        // "extended" or "compact"
	LogFilePath  string   `json:"log_file_path"`
}

// ErrorCode 错误代码枚举
type ErrorCode string

const (
	ErrFontUnavailable ErrorCode = "FONT_UNAVAILABLE"
	ErrInvalidOffset   ErrorCode = "INVALID_OFFSET"
	ErrRender          ErrorCode = "RENDER_ERROR"
	ErrRecordNotFound  ErrorCode = "RECORD_NOT_FOUND"
	ErrStore           ErrorCode = "STORE_ERROR"
	ErrImport          ErrorCode = "IMPORT_ERROR"
	ErrConfig          ErrorCode = "CONFIG_ERROR"
	ErrInvalidInput    ErrorCode = "INVALID_INPUT"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface for AppError
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError with the given code, message, and optional cause
func NewAppError(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAppErrorWithDetails creates a new AppError with details
func NewAppErrorWithDetails(code ErrorCode, message, details string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// CodeOf walks the error chain and returns the first AppError code found,
// or "" when the chain carries none.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if ae, ok := err.(*AppError); ok {
			return ae.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
