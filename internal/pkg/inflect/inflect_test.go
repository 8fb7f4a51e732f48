package inflect

import "testing"

func TestSnakeCaseRenderings(t *testing.T) {
	tests := []struct {
		text           string
		snake          string
		screamingSnake string
		kebab          string
		camel          string
		pascal         string
	}{
		{
			text:           "test_engineering",
			snake:          "test_engineering",
			screamingSnake: "TEST_ENGINEERING",
			kebab:          "test-engineering",
			camel:          "testEngineering",
			pascal:         "TestEngineering",
		},
		{
			text:           "devSandbox",
			snake:          "dev_sandbox",
			screamingSnake: "DEV_SANDBOX",
			kebab:          "dev-sandbox",
			camel:          "devSandbox",
			pascal:         "DevSandbox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := SnakeCase(tt.text)
			if v.Text() != tt.text {
				t.Errorf("Text() = %q, want %q", v.Text(), tt.text)
			}
			if v.Snake() != tt.snake || v.String() != tt.snake {
				t.Errorf("Snake() = %q, String() = %q, want %q", v.Snake(), v.String(), tt.snake)
			}
			if v.ScreamingSnake() != tt.screamingSnake {
				t.Errorf("ScreamingSnake() = %q, want %q", v.ScreamingSnake(), tt.screamingSnake)
			}
			if v.Kebab() != tt.kebab {
				t.Errorf("Kebab() = %q, want %q", v.Kebab(), tt.kebab)
			}
			if v.Camel() != tt.camel {
				t.Errorf("Camel() = %q, want %q", v.Camel(), tt.camel)
			}
			if v.Pascal() != tt.pascal {
				t.Errorf("Pascal() = %q, want %q", v.Pascal(), tt.pascal)
			}
		})
	}
}

func TestConverterKeepsRawText(t *testing.T) {
	name := NewConverter().ToSnakeCase("TODO")
	if name.Text() != "TODO" {
		t.Fatalf("Text() = %q, want TODO", name.Text())
	}
	if name.Snake() != "todo" {
		t.Fatalf("Snake() = %q, want todo", name.Snake())
	}
}
