package seed

// Dados de referência fixos, extraídos da planilha original do bar.

var initialCategories = []string{
	"Cervejas", "Destilados", "Vinhos", "Refrigerantes",
	"Sucos", "Energéticos", "Água", "Licores", "Xaropes",
}

type unitSeed struct {
	Name string
	Code string
}

var initialUnits = []unitSeed{
	{Name: "Garrafa 1L", Code: "GF 1L"},
	{Name: "Garrafa 995ml", Code: "GF 995ml"},
	{Name: "Garrafa 900ml", Code: "GF 900ml"},
	{Name: "Garrafa 750ml", Code: "GF 750ml"},
	{Name: "Garrafa 700ml", Code: "GF 700ml"},
	{Name: "Garrafa 600ml", Code: "GF 600ml"},
	{Name: "Garrafa 500ml", Code: "GF 500ml"},
	{Name: "Long Neck", Code: "LN"},
	{Name: "Lata 350ml", Code: "LT"},
	{Name: "Dose 50ml", Code: "DS"},
	{Name: "Dose 30ml", Code: "DS 30ml"},
}

type itemSeed struct {
	Name     string
	Category string
	Unit     string
}

var initialItems = []itemSeed{
	// Cervejas
	{Name: "Heineken", Category: "Cervejas", Unit: "Long Neck"},
	{Name: "Budweiser", Category: "Cervejas", Unit: "Long Neck"},
	{Name: "Stella Artois", Category: "Cervejas", Unit: "Long Neck"},
	{Name: "Original", Category: "Cervejas", Unit: "Garrafa 600ml"},

	// Destilados
	{Name: "Aperol", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Run Bacardi", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "Campari", Category: "Destilados", Unit: "Garrafa 900ml"},
	{Name: "Gin Beefeater", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Beefeater 24", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Bombay", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Bulldog", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Gordons", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Hendricks", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin London n 1", Category: "Destilados", Unit: "Garrafa 700ml"},
	{Name: "Gin Monkey 47", Category: "Destilados", Unit: "Garrafa 500ml"},
	{Name: "Gin Plymouth", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Seagers", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Seagrams", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Tanqueray", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Gin Tanqueray Tem", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Grey Goose", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "José Cuervo Silver", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Smirnoff Red", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "Vodka Absolute Extrakt", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Vodka Absolut Original", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "Vodka Ciroc", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "Vodka Orloff", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "Vodka Skyy", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "Vodka Stolichnaya", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "W Black Label", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "W Chivas 12", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "W Chivas 18", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "W Chivas Extra", Category: "Destilados", Unit: "Garrafa 750ml"},
	{Name: "W Jack Daniels", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "W Jack Daniels Tenesse Honey", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "W Jameson", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "W Logan", Category: "Destilados", Unit: "Garrafa 700ml"},
	{Name: "W Old Parr", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "W Old Parr Silver", Category: "Destilados", Unit: "Garrafa 1L"},
	{Name: "W Red Label", Category: "Destilados", Unit: "Garrafa 1L"},

	// Licores
	{Name: "Licor 43", Category: "Licores", Unit: "Garrafa 700ml"},
	{Name: "Licor Amarula", Category: "Licores", Unit: "Garrafa 750ml"},
	{Name: "Licor Baileys", Category: "Licores", Unit: "Garrafa 750ml"},
	{Name: "Licor Cointreau", Category: "Licores", Unit: "Garrafa 700ml"},
	{Name: "Licor Fireball", Category: "Licores", Unit: "Garrafa 750ml"},
	{Name: "Licor Frangelico", Category: "Licores", Unit: "Garrafa 700ml"},

	// Xaropes
	{Name: "Monin Frutas Vermelhas", Category: "Xaropes", Unit: "Garrafa 700ml"},
	{Name: "Monin Gengibre", Category: "Xaropes", Unit: "Garrafa 700ml"},

	// Vinhos e outros
	{Name: "Martini Rosso", Category: "Vinhos", Unit: "Garrafa 995ml"},
	{Name: "Vinho Tinto", Category: "Vinhos", Unit: "Garrafa 750ml"},
	{Name: "Vinho Branco", Category: "Vinhos", Unit: "Garrafa 750ml"},

	// Não alcoólicos
	{Name: "Coca-Cola", Category: "Refrigerantes", Unit: "Lata 350ml"},
	{Name: "Guaraná", Category: "Refrigerantes", Unit: "Lata 350ml"},
	{Name: "Suco de Laranja", Category: "Sucos", Unit: "Garrafa 1L"},
	{Name: "Red Bull", Category: "Energéticos", Unit: "Lata 350ml"},
	{Name: "Água com Gás", Category: "Água", Unit: "Garrafa 600ml"},
	{Name: "Água sem Gás", Category: "Água", Unit: "Garrafa 600ml"},
}
