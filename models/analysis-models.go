package models

import (
	"time"
)

// Supported prompt languages. Anything else falls back to Chinese.
const (
	LanguageChinese  = "zh"
	LanguageEnglish  = "en"
	LanguageJapanese = "ja"
)

// Analysis type selects which prompt template pair is used.
const (
	AnalysisTypeNormal  = "normal"
	AnalysisTypeFortune = "fortune"
)

const StyleMild = "mild"

type Analysis struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ImageData    string    `json:"-" gorm:"type:text;not null"`
	ImageName    string    `json:"imageName" gorm:"not null"`
	MimeType     string    `json:"mimeType" gorm:"not null"`
	StorageURL   *string   `json:"storageUrl,omitempty"`
	AIComment    *string   `json:"aiComment,omitempty"`
	StylePrompt  string    `json:"stylePrompt"`
	Language     string    `json:"language" gorm:"default:'zh'"`
	Style        string    `json:"style" gorm:"default:'mild'"`
	AnalysisType string    `json:"analysisType" gorm:"default:'normal'"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Analysis) TableName() string {
	return "analyses"
}
