package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"part_ids":        "部位ID",
	"restaurant_name": "店名",
	"eaten_at":        "食べた日時",
	"memo":            "メモ",
	"rating":          "評価",
	"photo_url":       "写真URL",
	"message":         "メッセージ",
	"history":         "会話履歴",
	"role":            "ロール",
	"content":         "本文",
	"system_prompt":   "システムプロンプト",
}

// fieldLabel は json タグ名を日本語の項目名にする。dive 先は "part_ids[0]" の形で来る
func fieldLabel(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	if translated, ok := fieldNameTranslations[name]; ok {
		return translated
	}
	return name
}

// sizeUnit は min/max の単位を型に応じて返す
func sizeUnit(fe validator.FieldError) (string, string) {
	switch fe.Kind() {
	case reflect.String:
		return "文字以上", "文字以下"
	case reflect.Slice, reflect.Array, reflect.Map:
		return "件以上", "件以下"
	default:
		return "以上", "以下"
	}
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
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

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldLabel(fe))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("url", "{0}は有効なURL形式ではありません。")
	registerTranslation("oneof", "{0}の値が正しくありません。")
	registerTranslation("gt", "{0}は正の値で指定してください。")

	Validator.RegisterTranslation("min", Trans, func(ut ut.Translator) error {
		return ut.Add("min", "{0}は{1}{2}で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		unit, _ := sizeUnit(fe)
		t, _ := ut.T("min", fieldLabel(fe), fe.Param(), unit)
		return t
	})

	Validator.RegisterTranslation("max", Trans, func(ut ut.Translator) error {
		return ut.Add("max", "{0}は{1}{2}で入力してください。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		_, unit := sizeUnit(fe)
		t, _ := ut.T("max", fieldLabel(fe), fe.Param(), unit)
		return t
	})
}
