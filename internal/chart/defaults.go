package chart

// DefaultTemplate returns the built-in general-purpose chart of accounts
// used when provisioning a new company without a custom template.
func DefaultTemplate() *Template {
	return &Template{
		Name: "plan general de cuentas",
		Classes: []TemplateClass{
			{Code: "1", Name: "Activo", Children: []TemplateClass{
				{Code: "11", Name: "Activo Corriente", Children: []TemplateClass{
					{Code: "111", Name: "Disponible", Accounts: []TemplateAccount{
						{Code: "11102", Name: "Caja"},
						{Code: "11103", Name: "Banco"},
					}},
					{Code: "112", Name: "Inversiones Temporales", Accounts: []TemplateAccount{
						{Code: "11201", Name: "Inversiones Temporales"},
					}},
					{Code: "113", Name: "Cuentas por Cobrar", Accounts: []TemplateAccount{
						{Code: "11301", Name: "Clientes Nacionales"},
						{Code: "11302", Name: "Clientes del Exterior"},
					}},
					{Code: "114", Name: "Anticipos", Accounts: []TemplateAccount{
						{Code: "11401", Name: "Anticipo a Proveedores"},
					}},
					{Code: "115", Name: "Gastos Anticipados", Accounts: []TemplateAccount{
						{Code: "11501", Name: "Gastos Pagados por Anticipado"},
					}},
					{Code: "116", Name: "Credito Fiscal", Accounts: []TemplateAccount{
						{Code: "11601", Name: "IVA Credito Fiscal"},
					}},
				}},
				{Code: "12", Name: "Activo No Corriente", Children: []TemplateClass{
					{Code: "123", Name: "Bienes de Uso", Accounts: []TemplateAccount{
						{Code: "12302", Name: "Muebles y Enseres"},
						{Code: "12303", Name: "Equipos de Computacion"},
					}},
					{Code: "124", Name: "Depreciaciones", Accounts: []TemplateAccount{
						{Code: "12401", Name: "Depreciacion Acumulada"},
					}},
				}},
			}},
			{Code: "2", Name: "Pasivo", Children: []TemplateClass{
				{Code: "21", Name: "Pasivo Corriente", Children: []TemplateClass{
					{Code: "211", Name: "Prestamos", Accounts: []TemplateAccount{
						{Code: "21101", Name: "Prestamos Bancarios Corto Plazo"},
					}},
					{Code: "212", Name: "Cuentas por Pagar", Accounts: []TemplateAccount{
						{Code: "21201", Name: "Proveedores"},
					}},
					{Code: "213", Name: "Obligaciones Sociales", Accounts: []TemplateAccount{
						{Code: "21301", Name: "Cargas Sociales por Pagar"},
					}},
					{Code: "214", Name: "Debito Fiscal", Accounts: []TemplateAccount{
						{Code: "21401", Name: "IVA Debito Fiscal"},
					}},
				}},
			}},
			{Code: "3", Name: "Patrimonio", Children: []TemplateClass{
				{Code: "31", Name: "Capital", Children: []TemplateClass{
					{Code: "311", Name: "Capital Social", Accounts: []TemplateAccount{
						{Code: "31101", Name: "Capital Pagado"},
					}},
				}},
			}},
			{Code: "4", Name: "Ingresos", Children: []TemplateClass{
				{Code: "41", Name: "Ingresos Operativos", Children: []TemplateClass{
					{Code: "411", Name: "Ventas", Accounts: []TemplateAccount{
						{Code: "41101", Name: "Ventas de Mercaderia"},
					}},
				}},
				{Code: "42", Name: "Ingresos Financieros", Children: []TemplateClass{
					{Code: "421", Name: "Rendimientos", Accounts: []TemplateAccount{
						{Code: "42101", Name: "Ingresos Financieros"},
					}},
				}},
			}},
			{Code: "5", Name: "Egresos", Children: []TemplateClass{
				{Code: "51", Name: "Costos", Children: []TemplateClass{
					{Code: "511", Name: "Costo de Ventas", Accounts: []TemplateAccount{
						{Code: "51101", Name: "Costo de Mercaderia Vendida"},
					}},
				}},
				{Code: "52", Name: "Gastos Administrativos", Children: []TemplateClass{
					{Code: "521", Name: "Sueldos", Accounts: []TemplateAccount{
						{Code: "52101", Name: "Sueldos y Salarios"},
					}},
					{Code: "522", Name: "Gastos de Oficina", Accounts: []TemplateAccount{
						{Code: "52201", Name: "Gastos de Oficina"},
					}},
					{Code: "523", Name: "Servicios Profesionales", Accounts: []TemplateAccount{
						{Code: "52301", Name: "Servicios Profesionales"},
					}},
					{Code: "524", Name: "Depreciaciones", Accounts: []TemplateAccount{
						{Code: "52401", Name: "Gasto por Depreciacion"},
					}},
					{Code: "525", Name: "Impuestos", Accounts: []TemplateAccount{
						{Code: "52501", Name: "Impuestos y Tasas"},
					}},
				}},
				{Code: "53", Name: "Gastos de Comercializacion", Children: []TemplateClass{
					{Code: "531", Name: "Publicidad", Accounts: []TemplateAccount{
						{Code: "53101", Name: "Publicidad y Promocion"},
					}},
					{Code: "532", Name: "Gastos de Ventas", Accounts: []TemplateAccount{
						{Code: "53201", Name: "Gastos de Ventas"},
					}},
				}},
				{Code: "54", Name: "Gastos Financieros", Children: []TemplateClass{
					{Code: "541", Name: "Intereses", Accounts: []TemplateAccount{
						{Code: "54101", Name: "Gastos Financieros"},
					}},
				}},
				{Code: "55", Name: "Otros Egresos", Children: []TemplateClass{
					{Code: "551", Name: "Otros", Accounts: []TemplateAccount{
						{Code: "55101", Name: "Otros Gastos"},
					}},
				}},
			}},
		},
	}
}
