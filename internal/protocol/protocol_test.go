package protocol

import "testing"

func TestDefault(t *testing.T) {
	proto := Default()

	if len(proto) == 0 {
		t.Fatal("Default() returned no sections")
	}

	seen := map[string]bool{}
	for _, section := range proto {
		if section.Name == "" {
			t.Error("section with empty name")
		}
		if seen[section.Name] {
			t.Errorf("duplicate section name %q", section.Name)
		}
		seen[section.Name] = true

		if len(section.Items) == 0 {
			t.Errorf("section %q has no items", section.Name)
		}
		items := map[string]bool{}
		for _, item := range section.Items {
			if item == "" {
				t.Errorf("section %q has an empty item", section.Name)
			}
			if items[item] {
				t.Errorf("section %q has duplicate item %q", section.Name, item)
			}
			items[item] = true
		}
	}
}

func TestItemCount(t *testing.T) {
	proto := Default()

	want := 0
	for _, section := range proto {
		want += len(section.Items)
	}
	if got := proto.ItemCount(); got != want {
		t.Errorf("ItemCount() = %d, want %d", got, want)
	}
}

func TestFind(t *testing.T) {
	proto := Default()

	t.Run("existing section", func(t *testing.T) {
		name := proto[0].Name
		section, ok := proto.Find(name)
		if !ok {
			t.Fatalf("Find(%q) = false, want true", name)
		}
		if section.Name != name {
			t.Errorf("Find(%q) returned section %q", name, section.Name)
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		if _, ok := proto.Find("No Such Section"); ok {
			t.Error("Find() = true for unknown section, want false")
		}
	})
}

func TestContains(t *testing.T) {
	proto := Default()
	section := proto[0]
	item := section.Items[0]

	if !proto.Contains(section.Name, item) {
		t.Errorf("Contains(%q, %q) = false, want true", section.Name, item)
	}
	if proto.Contains(section.Name, "not a real item") {
		t.Error("Contains() = true for unknown item, want false")
	}
	if proto.Contains("not a real section", item) {
		t.Error("Contains() = true for unknown section, want false")
	}
}
