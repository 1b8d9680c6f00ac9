package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/library/schema"
)

func TestParseStrict(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		rec, err := schema.ParseStrict([]byte(`{
			"type": "bind",
			"name": "QuickDate",
			"creator": "x",
			"value": "bind",
			"code": {"combo": "Ctrl+D", "action": "insert", "text": "2024-01-01"}
		}`))
		require.NoError(t, err)
		assert.Equal(t, library.KindBind, rec.Kind)
		assert.Equal(t, "QuickDate", rec.Name)
		assert.Equal(t, "x", rec.Creator)
		assert.Equal(t, "bind", rec.DeclaredKind)
		assert.JSONEq(t, `{"combo":"Ctrl+D","action":"insert","text":"2024-01-01"}`, string(rec.Code))
	})

	t.Run("code is stored compact and ordered", func(t *testing.T) {
		rec, err := schema.ParseStrict([]byte(`{"type":"theme","name":"n","creator":"c","value":"v",
			"code": { "z": 1,  "a": 2 }}`))
		require.NoError(t, err)
		assert.Equal(t, `{"z":1,"a":2}`, string(rec.Code))
	})

	t.Run("unknown kind is kept", func(t *testing.T) {
		rec, err := schema.ParseStrict([]byte(`{"type":"snippets","name":"n","creator":"c","value":"v","code":null}`))
		require.NoError(t, err)
		assert.Equal(t, library.Kind("snippets"), rec.Kind)
		assert.Equal(t, "null", string(rec.Code))
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, data := range []string{
			`{"name":"n","creator":"c","value":"v","code":{}}`,
			`{"type":"theme","creator":"c","value":"v","code":{}}`,
			`{"type":"theme","name":"n","value":"v","code":{}}`,
			`{"type":"theme","name":"n","creator":"c","code":{}}`,
			`{"type":"theme","name":"n","creator":"c","value":"v"}`,
			`{}`,
			`null`,
		} {
			_, err := schema.ParseStrict([]byte(data))
			assert.True(t, errors.Is(err, library.ErrSchemaRejected), "expected rejection for %s, got %v", data, err)
		}
	})

	t.Run("non-string fields are kept as json text", func(t *testing.T) {
		rec, err := schema.ParseStrict([]byte(`{"type":"theme","name":5,"creator":null,"value":[ "v", 1 ],"code":{}}`))
		require.NoError(t, err)
		assert.Equal(t, library.KindTheme, rec.Kind)
		assert.Equal(t, "5", rec.Name)
		assert.Equal(t, "null", rec.Creator)
		assert.Equal(t, `["v",1]`, rec.DeclaredKind)
	})

	t.Run("non-string type is an unknown kind", func(t *testing.T) {
		rec, err := schema.ParseStrict([]byte(`{"type":{"kind":"theme"},"name":"n","creator":"c","value":"v","code":{}}`))
		require.NoError(t, err)
		assert.Equal(t, library.Kind(`{"kind":"theme"}`), rec.Kind)
		_, isUnknown := library.Classify(&rec).(library.UnknownLibrary)
		assert.True(t, isUnknown)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := schema.ParseStrict([]byte(`{"type":"theme",`))
		require.Error(t, err)
		assert.False(t, errors.Is(err, library.ErrSchemaRejected))
	})
}

func TestFindBraceBlock(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		text := `x {a} y`
		s, e, ok := schema.FindBraceBlock(text, 2)
		require.True(t, ok)
		assert.Equal(t, "{a}", text[s:e])
	})
	t.Run("nested", func(t *testing.T) {
		text := `{a {b} {c {d}}} tail}`
		s, e, ok := schema.FindBraceBlock(text, 0)
		require.True(t, ok)
		assert.Equal(t, "{a {b} {c {d}}}", text[s:e])
	})
	t.Run("braces in strings", func(t *testing.T) {
		text := `{"t": "a } b", 'u': '{'} rest`
		s, e, ok := schema.FindBraceBlock(text, 0)
		require.True(t, ok)
		assert.Equal(t, `{"t": "a } b", 'u': '{'}`, text[s:e])
	})
	t.Run("escaped quote in string", func(t *testing.T) {
		text := `{"t": "say \"}\" now"}!`
		s, e, ok := schema.FindBraceBlock(text, 0)
		require.True(t, ok)
		assert.Equal(t, `{"t": "say \"}\" now"}`, text[s:e])
	})
	t.Run("unterminated", func(t *testing.T) {
		_, _, ok := schema.FindBraceBlock(`{"a": {"b": 1}`, 0)
		assert.False(t, ok)
	})
	t.Run("not at brace", func(t *testing.T) {
		_, _, ok := schema.FindBraceBlock(`abc`, 0)
		assert.False(t, ok)
		_, _, ok = schema.FindBraceBlock(`{}`, 5)
		assert.False(t, ok)
	})
}

func TestExtractFields(t *testing.T) {

	t.Run("import without creator defaults it", func(t *testing.T) {
		text := "Here is my theme\n" +
			"name: {\"MyTheme\"}\n" +
			"code: {\"background\":\"#000000\",\"foreground\":\"#ffffff\"}\n"
		f := schema.ExtractFields(text)
		require.False(t, f.Empty())
		assert.Equal(t, "MyTheme", f.Name)
		assert.Equal(t, "", f.Creator)
		require.NotNil(t, f.Code)
		assert.Equal(t, schema.CodeJSON, f.Code.Outcome)

		rec := schema.BuildImport(f)
		assert.Equal(t, "unknown", rec.Creator)
		assert.Equal(t, "MyTheme", rec.Name)
		assert.Equal(t, library.KindTheme, rec.Kind)
		assert.Equal(t, "theme", rec.DeclaredKind)
		assert.Equal(t, `{"background":"#000000","foreground":"#ffffff"}`, string(rec.Code))
	})

	t.Run("embedded closing brace in code string", func(t *testing.T) {
		text := `code: {"combo": "Ctrl+B", "action": "insert", "text": "}"} type: {bind}`
		f := schema.ExtractFields(text)
		require.NotNil(t, f.Code)
		assert.Equal(t, schema.CodeJSON, f.Code.Outcome)
		assert.JSONEq(t, `{"combo":"Ctrl+B","action":"insert","text":"}"}`, string(f.Code.Value))
		assert.Equal(t, "bind", f.Type)
	})

	t.Run("labels are case-insensitive and quotes stripped", func(t *testing.T) {
		f := schema.ExtractFields(`NAME : {'Quoted'}  Creator:{ someone }`)
		assert.Equal(t, "Quoted", f.Name)
		assert.Equal(t, "someone", f.Creator)
	})

	t.Run("label must be a whole word", func(t *testing.T) {
		f := schema.ExtractFields(`nickname: {x}`)
		assert.True(t, f.Empty())
	})

	t.Run("unterminated block is absent", func(t *testing.T) {
		f := schema.ExtractFields(`name: {"open"  creator: {"c"}`)
		assert.Equal(t, "", f.Name)
		assert.Equal(t, "c", f.Creator)
	})

	t.Run("nothing recognized", func(t *testing.T) {
		f := schema.ExtractFields("just some prose")
		assert.True(t, f.Empty())
	})

	t.Run("type defaults from value", func(t *testing.T) {
		rec := schema.BuildImport(schema.ExtractFields(`value: {tabs}`))
		assert.Equal(t, library.KindTabs, rec.Kind)
		assert.Equal(t, "tabs", rec.DeclaredKind)
		assert.Equal(t, "ImportedLib", rec.Name)
		assert.Equal(t, `{}`, string(rec.Code))
	})
}

func TestParseCode(t *testing.T) {

	t.Run("json", func(t *testing.T) {
		r := schema.ParseCode(`"a": 1, "b": [true, null]`)
		assert.Equal(t, schema.CodeJSON, r.Outcome)
		assert.Equal(t, `{"a":1,"b":[true,null]}`, string(r.Value))
		assert.True(t, r.Structured())
	})

	t.Run("literal fallback", func(t *testing.T) {
		r := schema.ParseCode(`'Light': {'background': '#fff'}, 'flag': True, 'none': None`)
		assert.Equal(t, schema.CodeLiteral, r.Outcome)
		assert.Equal(t, `{"Light":{"background":"#fff"},"flag":true,"none":null}`, string(r.Value))
	})

	t.Run("raw when no structure", func(t *testing.T) {
		r := schema.ParseCode(`plain words`)
		assert.Equal(t, schema.CodeRaw, r.Outcome)
		assert.False(t, r.Structured())
		var s string
		require.NoError(t, json.Unmarshal(r.Value, &s))
		assert.Equal(t, "plain words", s)
	})

	t.Run("raw when both attempts fail", func(t *testing.T) {
		r := schema.ParseCode(`key: [1, 2`)
		assert.Equal(t, schema.CodeRaw, r.Outcome)
		assert.Equal(t, `key: [1, 2`, r.Raw)
	})

	t.Run("blank values", func(t *testing.T) {
		assert.True(t, schema.CodeResult{Value: json.RawMessage(`{}`)}.IsBlank())
		assert.True(t, schema.CodeResult{Value: json.RawMessage(`""`)}.IsBlank())
		assert.False(t, schema.CodeResult{Value: json.RawMessage(`{"a":1}`)}.IsBlank())
	})
}

func TestBuildForm(t *testing.T) {

	t.Run("json code", func(t *testing.T) {
		rec, err := schema.BuildForm(schema.Form{Kind: "bind", Name: "My Bind", Code: `{"combo":"Alt+X","action":"insert","text":"x"}`})
		require.NoError(t, err)
		assert.Equal(t, library.KindBind, rec.Kind)
		assert.Equal(t, "unknown", rec.Creator)
		assert.Equal(t, "bind", rec.DeclaredKind)
		assert.Equal(t, "My_Bind.lib", schema.SuggestedFilename(rec, ".lib"))
	})

	t.Run("literal code", func(t *testing.T) {
		rec, err := schema.BuildForm(schema.Form{Code: `{'tabs': [{'title': 'T', 'content': 'c'}]}`})
		require.NoError(t, err)
		assert.Equal(t, library.KindTheme, rec.Kind)
		assert.Equal(t, "user_lib", rec.Name)
		assert.Equal(t, `{"tabs":[{"title":"T","content":"c"}]}`, string(rec.Code))
	})

	t.Run("unparseable code", func(t *testing.T) {
		_, err := schema.BuildForm(schema.Form{Name: "x", Code: `not a literal`})
		assert.Error(t, err)
		_, err = schema.BuildForm(schema.Form{Name: "x", Code: ``})
		assert.Error(t, err)
	})
}
