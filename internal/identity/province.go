package identity

// Province is the issuing jurisdiction encoded in the first two digits of a cédula.
type Province struct {
	Code int
	Name string
}

// MaxProvinceCode is the highest province code accepted for personal cédulas.
const MaxProvinceCode = 24

var provinceNames = [MaxProvinceCode + 1]string{
	1:  "Azuay",
	2:  "Bolívar",
	3:  "Cañar",
	4:  "Carchi",
	5:  "Cotopaxi",
	6:  "Chimborazo",
	7:  "El Oro",
	8:  "Esmeraldas",
	9:  "Guayas",
	10: "Imbabura",
	11: "Loja",
	12: "Los Ríos",
	13: "Manabí",
	14: "Morona Santiago",
	15: "Napo",
	16: "Pastaza",
	17: "Pichincha",
	18: "Tungurahua",
	19: "Zamora Chinchipe",
	20: "Galápagos",
	21: "Sucumbíos",
	22: "Orellana",
	23: "Santo Domingo de los Tsáchilas",
	24: "Santa Elena",
}

// LookupProvince returns the province for code, or false when code is outside 1-24.
func LookupProvince(code int) (Province, bool) {
	if code < 1 || code > MaxProvinceCode {
		return Province{}, false
	}
	return Province{Code: code, Name: provinceNames[code]}, true
}
