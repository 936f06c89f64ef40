/*
 * Copyright © 2019 One Concern
 *
 */

package model

import (
	"testing"

	"github.com/oneconcern/cratemon/pkg/errors"
	"github.com/oneconcern/cratemon/pkg/model/status"
)

func TestValidateWorkspace(t *testing.T) {
	tests := []struct {
		name      string
		workspace Workspace
		wantErr   bool
	}{
		{
			name:      "default workspace is valid",
			workspace: DefaultWorkspace(),
		},
		{
			name:      "empty workspace",
			workspace: Workspace{},
			wantErr:   true,
		},
		{
			name: "package without manifest",
			workspace: Workspace{Packages: []PackageSpec{
				{Name: "apdu"},
			}},
			wantErr: true,
		},
		{
			name: "duplicate package",
			workspace: Workspace{Packages: []PackageSpec{
				{Name: "apdu", Manifest: "apdu/Cargo.toml"},
				{Name: "apdu", Manifest: "apdu2/Cargo.toml"},
			}},
			wantErr: true,
		},
		{
			name: "dependency declared after dependent",
			workspace: Workspace{Packages: []PackageSpec{
				{Name: "transport", Manifest: "transport/Cargo.toml",
					Dependencies: []DependencySpec{{Name: "apdu", Path: "../apdu"}}},
				{Name: "apdu", Manifest: "apdu/Cargo.toml"},
			}},
			wantErr: true,
		},
		{
			name: "dependency without path",
			workspace: Workspace{Packages: []PackageSpec{
				{Name: "apdu", Manifest: "apdu/Cargo.toml"},
				{Name: "transport", Manifest: "transport/Cargo.toml",
					Dependencies: []DependencySpec{{Name: "apdu"}}},
			}},
			wantErr: true,
		},
		{
			name: "self dependency",
			workspace: Workspace{Packages: []PackageSpec{
				{Name: "apdu", Manifest: "apdu/Cargo.toml",
					Dependencies: []DependencySpec{{Name: "apdu", Path: "."}}},
			}},
			wantErr: true,
		},
	}
	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.workspace)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !errors.Is(err, status.ErrWorkspace) {
					t.Errorf("error = %v, want ErrWorkspace", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWorkspaceLookup(t *testing.T) {
	t.Parallel()
	ws := DefaultWorkspace()

	pkg, ok := ws.Package("transport")
	if !ok {
		t.Fatal("transport not found in default workspace")
	}
	if pkg.Manifest != "transport/Cargo.toml" {
		t.Errorf("manifest = %q", pkg.Manifest)
	}
	if got := pkg.Dir(); got != "transport" {
		t.Errorf("Dir() = %q", got)
	}

	if _, ok := ws.Package("nonesuch"); ok {
		t.Error("unexpected package nonesuch")
	}
}

func TestDefaultWorkspaceOrder(t *testing.T) {
	t.Parallel()
	ws := DefaultWorkspace()
	if len(ws.Packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(ws.Packages))
	}
	order := []string{"apdu", "transport", "eth-app"}
	for i, want := range order {
		if ws.Packages[i].Name != want {
			t.Errorf("package %d = %s, want %s", i, ws.Packages[i].Name, want)
		}
	}
}
