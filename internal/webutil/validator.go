package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_5_box_vocab/internal/model"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"code":       "生徒コード",
	"name":       "氏名",
	"class_name": "クラス",
	"word_id":    "単語ID",
	"answer":     "回答",
	"words":      "単語",
	"prompt":     "問題文",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	Validator.RegisterTranslation("required", Trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0}は必須項目です。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", translatedField(fe))
		return t
	})

	// min / max は配列なら件数、文字列なら文字数
	registerLength := func(tag, strMsg, sliceMsg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-string", strMsg, true); err != nil {
				return err
			}
			return ut.Add(tag+"-items", sliceMsg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-string"
			if k := fe.Kind(); k == reflect.Slice || k == reflect.Array || k == reflect.Map {
				key = tag + "-items"
			}
			t, _ := ut.T(key, translatedField(fe), fe.Param())
			return t
		})
	}
	registerLength("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}件以上指定してください。")
	registerLength("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}件以下で指定してください。")
}

// ValidateStruct は構造体を検証し、失敗した場合は翻訳済みメッセージを持つ AppError を返します
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationError(verrs)
	}
	return model.NewAppError("VALIDATION_ERROR", "入力内容が正しくありません。", "", model.ErrInvalidInput)
}

// NewValidationError は ValidationErrors を1つの AppError にまとめます
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
		messages = append(messages, fe.Translate(Trans))
	}
	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, " "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
