package seed

import "github.com/ndewijer/Finance-Dashboard-Backend/internal/model"

type sampleTransaction struct {
	key         string
	amount      float64
	txType      model.TransactionType
	category    string
	description string
	date        string
	tags        []string
}

type sampleInvestment struct {
	key           string
	name          string
	invType       model.InvestmentType
	amount        float64
	purchasePrice float64
	currentPrice  float64
	quantity      float64
	date          string
}

const (
	income  = model.TransactionIncome
	expense = model.TransactionExpense
)

// Listed in display order: the first entry is shown at the top of the transaction list.
var sampleTransactions = []sampleTransaction{
	// July 2025
	{"1", 3500, income, "Salario", "Salario mensual julio", "2025-07-01", []string{"trabajo", "mensual"}},
	{"2", 250, income, "Freelance", "Proyecto web para cliente", "2025-07-15", []string{"freelance", "programación"}},
	{"3", -1200, expense, "Vivienda", "Alquiler julio", "2025-07-01", []string{"alquiler", "fijo"}},
	{"4", -350, expense, "Alimentación", "Compra mensual supermercado", "2025-07-02", []string{"supermercado", "comida"}},
	{"5", -85, expense, "Servicios", "Factura electricidad", "2025-07-05", []string{"electricidad", "servicios"}},
	{"6", -45, expense, "Servicios", "Internet y móvil", "2025-07-10", []string{"internet", "móvil"}},
	{"7", -120, expense, "Entretenimiento", "Cena con amigos", "2025-07-12", []string{"restaurante", "social"}},
	{"8", -80, expense, "Transporte", "Gasolina", "2025-07-18", []string{"coche", "combustible"}},
	{"9", -200, expense, "Alimentación", "Compras varias supermercado", "2025-07-20", []string{"supermercado", "comida"}},
	{"10", -150, expense, "Entretenimiento", "Cinema y ocio", "2025-07-25", []string{"cine", "ocio"}},

	// August 2025
	{"11", 3500, income, "Salario", "Salario mensual agosto", "2025-08-01", []string{"trabajo", "mensual"}},
	{"12", 400, income, "Freelance", "Consultoría técnica", "2025-08-10", []string{"freelance", "consultoría"}},
	{"13", 150, income, "Otros", "Venta productos usados", "2025-08-22", []string{"venta", "extra"}},
	{"14", -1200, expense, "Vivienda", "Alquiler agosto", "2025-08-01", []string{"alquiler", "fijo"}},
	{"15", -380, expense, "Alimentación", "Compra mensual supermercado", "2025-08-03", []string{"supermercado", "comida"}},
	{"16", -95, expense, "Servicios", "Factura electricidad", "2025-08-05", []string{"electricidad", "servicios"}},
	{"17", -45, expense, "Servicios", "Internet y móvil", "2025-08-10", []string{"internet", "móvil"}},
	{"18", -600, expense, "Vacaciones", "Viaje de verano", "2025-08-15", []string{"vacaciones", "viaje"}},
	{"19", -90, expense, "Transporte", "Gasolina y peajes", "2025-08-16", []string{"coche", "combustible"}},
	{"20", -250, expense, "Alimentación", "Restaurantes en vacaciones", "2025-08-17", []string{"restaurante", "vacaciones"}},
	{"21", -180, expense, "Alimentación", "Compras varias agosto", "2025-08-25", []string{"supermercado", "comida"}},
	{"22", -75, expense, "Salud", "Farmacia y medicinas", "2025-08-28", []string{"farmacia", "salud"}},

	// September 2025
	{"23", 3500, income, "Salario", "Salario mensual septiembre", "2025-09-01", []string{"trabajo", "mensual"}},
	{"24", 300, income, "Freelance", "Mantenimiento web", "2025-09-05", []string{"freelance", "mantenimiento"}},
	{"25", -1200, expense, "Vivienda", "Alquiler septiembre", "2025-09-01", []string{"alquiler", "fijo"}},
	{"26", -320, expense, "Alimentación", "Compra mensual supermercado", "2025-09-02", []string{"supermercado", "comida"}},
	{"27", -78, expense, "Servicios", "Factura electricidad", "2025-09-05", []string{"electricidad", "servicios"}},
	{"28", -45, expense, "Servicios", "Internet y móvil", "2025-09-08", []string{"internet", "móvil"}},
}

var sampleInvestments = []sampleInvestment{
	{"inv1", "BBVA", model.InvestmentStocks, 1000, 8.50, 9.20, 117.65, "2025-07-10"},
	{"inv2", "S&P 500 ETF", model.InvestmentETF, 2000, 420.00, 445.30, 4.76, "2025-08-05"},
	{"inv3", "Bitcoin", model.InvestmentCrypto, 500, 65000.00, 68500.00, 0.0077, "2025-08-20"},
}
