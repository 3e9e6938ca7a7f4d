/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"reflect"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "Alice", false},
		{"multiword", "Jon Snow", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"comma", "Smith, John", true},
		{"semicolon", "a;b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateName(%q) err = %v, wantErr %v",
					tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestUnquoteAll(t *testing.T) {
	in := []string{"player", "--name", `"Jon Snow"`, `plain`, `""`}
	want := []string{"player", "--name", "Jon Snow", "plain", ""}

	got := unquoteAll(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unquoteAll() = %v, want %v", got, want)
	}
}
