package projeto

import (
	"math"
	"testing"
)

func TestHorasDecimais(t *testing.T) {
	cases := []struct {
		nome    string
		valor   string
		querida float64
	}{
		{"duas horas e meia", "02:30", 2.5},
		{"uma hora", "1:00", 1},
		{"sem zeros a esquerda", "7:5", 7.0 + 5.0/60.0},
		{"zero", "00:00", 0},
		{"texto", "abc", 0},
		{"vazio", "", 0},
		{"tres partes", "1:2:3", 0},
		{"minutos nao numericos", "1:xx", 0},
	}

	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			got := horasDecimais(tc.valor)
			if math.Abs(got-tc.querida) > 1e-9 {
				t.Fatalf("horasDecimais(%q) = %v, esperado %v", tc.valor, got, tc.querida)
			}
		})
	}
}

func TestSomarHoras(t *testing.T) {
	total := somarHoras([]string{"01:30", "02:15", "garbage", ""})
	if total != 3.75 {
		t.Fatalf("total esperado 3.75, obtido %v", total)
	}
}

func TestSomarHorasArredondaDuasCasas(t *testing.T) {
	// 0:05 + 0:05 = 10/60 horas, arredondado a duas casas.
	total := somarHoras([]string{"0:05", "0:05"})
	if total != 0.17 {
		t.Fatalf("total esperado 0.17, obtido %v", total)
	}
}

func TestSomarHorasVazio(t *testing.T) {
	if total := somarHoras(nil); total != 0 {
		t.Fatalf("total esperado 0, obtido %v", total)
	}
}
