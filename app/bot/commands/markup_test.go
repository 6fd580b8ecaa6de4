package commands

import (
	"encoding/json"
	"testing"
)

func TestOpenAppMarkup(t *testing.T) {
	data, err := json.Marshal(openAppMarkup("https://notes.example"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"inline_keyboard":[[{"text":"Open Notes App","web_app":{"url":"https://notes.example"}}]]}`
	if string(data) != want {
		t.Fatalf("unexpected reply_markup payload: %s", data)
	}
}

func TestMenuMatchesDispatch(t *testing.T) {
	want := []string{"start", "add", "notes", "clear"}

	if len(Menu) != len(want) {
		t.Fatalf("unexpected menu: %+v", Menu)
	}
	for i, command := range want {
		if Menu[i].Command != command {
			t.Fatalf("menu entry %d should be %q: %+v", i, command, Menu[i])
		}
		if Menu[i].Description == "" {
			t.Fatalf("menu entry %q should carry a description", command)
		}
	}
}
