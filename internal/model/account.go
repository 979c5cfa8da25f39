package model

// Family is the top-level class code family (first digit of a class or
// account code). It determines the sign convention of every account below it.
type Family int

const (
	FamilyAsset     Family = 1
	FamilyLiability Family = 2
	FamilyEquity    Family = 3
	FamilyIncome    Family = 4
	FamilyExpense   Family = 5
)

// BalanceSheetFamilies are the families a balance sheet is built over.
var BalanceSheetFamilies = []Family{FamilyAsset, FamilyLiability, FamilyEquity}

// IncomeStatementFamilies are the families an income statement is built over.
var IncomeStatementFamilies = []Family{FamilyIncome, FamilyExpense}

// FamilyOf returns the family for a class or account code ("52101" -> 5).
// Returns 0 for codes that do not start with a digit 1-5.
func FamilyOf(code string) Family {
	if len(code) == 0 {
		return 0
	}
	d := code[0] - '0'
	if d < 1 || d > 5 {
		return 0
	}
	return Family(d)
}

// AccountClass is an internal node of the chart of accounts. Root classes
// have a nil ParentID and a single-digit code naming their family.
type AccountClass struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID uint   `gorm:"not null;index:idx_class_company_code,unique" json:"company_id"`
	Code      string `gorm:"type:varchar(16);not null;index:idx_class_company_code,unique" json:"code"`
	Name      string `gorm:"type:varchar(150);not null" json:"name"`
	ParentID  *uint  `gorm:"index" json:"parent_id"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}

// TableName maps AccountClass to the account_classes table.
func (AccountClass) TableName() string {
	return "account_classes"
}

// Family returns the sign-convention family of this class.
func (c AccountClass) Family() Family {
	return FamilyOf(c.Code)
}

// Account is a leaf of the chart of accounts; movements post against it.
type Account struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID uint   `gorm:"not null;index:idx_account_company_code,unique" json:"company_id"`
	ClassID   uint   `gorm:"not null;index" json:"class_id"`
	Code      string `gorm:"type:varchar(16);not null;index:idx_account_company_code,unique" json:"code"`
	Name      string `gorm:"type:varchar(150);not null" json:"name"`
	Active    bool   `gorm:"not null;default:true" json:"active"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}

// TableName maps Account to the accounts table.
func (Account) TableName() string {
	return "accounts"
}

// Family returns the sign-convention family of this account.
func (a Account) Family() Family {
	return FamilyOf(a.Code)
}
