package application

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInspectRejectsNonBundlePath(t *testing.T) {
	if d := Inspect("/Applications/notes.txt"); d != nil {
		t.Errorf("expected nil descriptor for non-bundle path, got %+v", d)
	}
	if d := Inspect("/Applications"); d != nil {
		t.Errorf("expected nil descriptor for extensionless path, got %+v", d)
	}
}

func TestInspectDisplayNameAndMetadata(t *testing.T) {
	bundle := makeBundle(t, t.TempDir(), "Foo.app", testManifest, true)

	d := Inspect(bundle)
	if d == nil {
		t.Fatal("Inspect returned nil for a valid bundle")
	}
	if d.DisplayName != "Foo" {
		t.Errorf("DisplayName = %q, want Foo", d.DisplayName)
	}
	if d.BundlePath != bundle {
		t.Errorf("BundlePath = %q, want %q", d.BundlePath, bundle)
	}
	if d.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", d.Version)
	}
	if d.BundleIdentifier != "com.example.foo" {
		t.Errorf("BundleIdentifier = %q, want com.example.foo", d.BundleIdentifier)
	}
}

func TestInspectUnreadableManifestIsNonFatal(t *testing.T) {
	bundle := makeBundle(t, t.TempDir(), "Broken.app", `<?xml version="1.0"?><plist><dict><key>unterminated`, false)

	d := Inspect(bundle)
	if d == nil {
		t.Fatal("Inspect rejected a bundle over an unreadable manifest")
	}
	if d.Version != "" || d.BundleIdentifier != "" {
		t.Errorf("metadata should be empty for unreadable manifest, got %q / %q", d.Version, d.BundleIdentifier)
	}
}

func TestScanFiltersEntries(t *testing.T) {
	dir := t.TempDir()

	makeBundle(t, dir, "Foo.app", testManifest, true)
	makeBundle(t, dir, ".Hidden.app", testManifest, true)
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "Utilities"), 0755); err != nil {
		t.Fatal(err)
	}

	bundles, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("Scan returned %d bundles, want 1", len(bundles))
	}
	if bundles[0].DisplayName != "Foo" {
		t.Errorf("scanned bundle is %q, want Foo", bundles[0].DisplayName)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for unreadable scan directory")
	}
}

func TestMergeDeduplicatesByPath(t *testing.T) {
	scanned := []BundleDescriptor{
		{DisplayName: "Foo", BundlePath: "/Applications/Foo.app"},
		{DisplayName: "Bar", BundlePath: "/Applications/Bar.app"},
	}

	merged := Merge(scanned,
		BundleDescriptor{DisplayName: "Foo", BundlePath: "/Applications/Foo.app"},
		BundleDescriptor{DisplayName: "Baz", BundlePath: "/Applications/Baz.app"},
	)

	if len(merged) != 3 {
		t.Fatalf("merged list has %d entries, want 3", len(merged))
	}
	if merged[2].DisplayName != "Baz" {
		t.Errorf("new entry is %q, want Baz appended last", merged[2].DisplayName)
	}
}

func TestNormalizeIconName(t *testing.T) {
	cases := map[string]string{
		"AppIcon":      "AppIcon.icns",
		"AppIcon.icns": "AppIcon.icns",
	}
	for in, want := range cases {
		if got := normalizeIconName(in); got != want {
			t.Errorf("normalizeIconName(%q) = %q, want %q", in, got, want)
		}
	}
}
