package projeto

import (
	"math"
	"strconv"
	"strings"
)

// horasDecimais converte uma duração "H:MM" em horas decimais. Valores
// fora do formato esperado contam como zero, tal como os registos
// históricos sempre foram tratados.
func horasDecimais(valor string) float64 {
	partes := strings.Split(valor, ":")
	if len(partes) != 2 {
		return 0
	}
	horas, err := strconv.Atoi(partes[0])
	if err != nil {
		return 0
	}
	minutos, err := strconv.Atoi(partes[1])
	if err != nil {
		return 0
	}
	return float64(horas) + float64(minutos)/60
}

// somarHoras acumula as durações faturadas e arredonda a duas casas.
func somarHoras(valores []string) float64 {
	var total float64
	for _, v := range valores {
		total += horasDecimais(v)
	}
	return arredondar(total)
}

func arredondar(valor float64) float64 {
	return math.Round(valor*100) / 100
}
