package digimenu_test

import (
	"os"
	"regexp"
	"testing"
)

func TestModuleDependencies_JWTPresent(t *testing.T) {
	testModulePresence(t, "github.com/golang-jwt/jwt/v5")
}

func TestModuleDependencies_QRCodePresent(t *testing.T) {
	testModulePresence(t, "github.com/skip2/go-qrcode")
}

func TestModuleDependencies_XCryptoPresent(t *testing.T) {
	testModulePresence(t, "golang.org/x/crypto")
}

func TestModuleDependencies_KoanfPresent(t *testing.T) {
	testModulePresence(t, "github.com/knadh/koanf/v2")
}

func testModulePresence(t *testing.T, module string) {
	t.Helper()

	t.Run("happy_present_in_real_go_mod", func(t *testing.T) {
		goMod, err := os.ReadFile("go.mod")
		if err != nil {
			t.Fatalf("read go.mod: %v", err)
		}
		if !moduleRequired(string(goMod), module) {
			t.Fatalf("expected module %q to be present in go.mod", module)
		}
	})

	t.Run("error_missing_module_in_fixture", func(t *testing.T) {
		fixture := `module example.com/demo

go 1.25.0

require (
	github.com/gin-gonic/gin v1.11.0
)`
		if moduleRequired(fixture, module) {
			t.Fatalf("expected fixture to not contain module %q", module)
		}
	})
}

func moduleRequired(goModContent, module string) bool {
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(module) + `\s+v\S+`)
	return re.MatchString(goModContent)
}
