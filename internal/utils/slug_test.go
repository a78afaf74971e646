package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Bodas", "bodas"},
		{"Fotografía de Producto", "fotografia-de-producto"},
		{"Sesión & Retrato", "sesion-y-retrato"},
		{"  Eventos / Conciertos  ", "eventos-conciertos"},
		{"Años Nuevos", "anos-nuevos"},
		{"¡Hola!", "hola"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.input); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
