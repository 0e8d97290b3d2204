package profile

// Reference dataset of labeled counterparty profiles. Derived from a
// PaySim-style corpus of mobile-money transactions: fraudulent rows are
// dominated by CASH_OUT and TRANSFER drains that empty the sender's
// balance, legitimate rows are small routine PAYMENT/TRANSFER/DEBIT
// activity against healthy balances.
//
// Labels are ground truth from the corpus and never change at runtime.

// ReferenceProfiles returns the seed dataset used to populate the store.
func ReferenceProfiles() []*Profile {
	return []*Profile{
		// Fraudulent counterparties
		{
			ID: "fraud-001", Name: "Vikram Malhotra", Handle: "vikram@securebank",
			TxnType: TypeCashOut, TypicalAmount: 9839.64,
			OldSenderBalance: 170136.0, NewSenderBalance: 160296.36,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "2 weeks",
			CommonTxnTypes: []string{TypeCashOut, TypeTransfer},
			TxnCount:       12, FlaggedCount: 5,
		},
		{
			ID: "fraud-002", Name: "Rajesh Gupta", Handle: "rajesh.g@securebank",
			TxnType: TypeTransfer, TypicalAmount: 181000.0,
			OldSenderBalance: 181000.0, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "1 week",
			CommonTxnTypes: []string{TypeTransfer, TypeCashOut},
			TxnCount:       8, FlaggedCount: 3,
		},
		{
			ID: "fraud-003", Name: "Suresh Pandey", Handle: "suresh.p@securebank",
			TxnType: TypeCashOut, TypicalAmount: 339682.13,
			OldSenderBalance: 339682.13, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "1 month",
			CommonTxnTypes: []string{TypeCashOut},
			TxnCount:       19, FlaggedCount: 7,
		},
		{
			ID: "fraud-004", Name: "Deepak Yadav", Handle: "deepak.y@securebank",
			TxnType: TypeTransfer, TypicalAmount: 5399500.0,
			OldSenderBalance: 5399500.0, NewSenderBalance: 0.0,
			OldDestBalance: 68882.45, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "2 weeks",
			CommonTxnTypes: []string{TypeTransfer},
			TxnCount:       6, FlaggedCount: 3,
		},
		{
			ID: "fraud-005", Name: "Manish Tiwari", Handle: "manish.t@securebank",
			TxnType: TypeCashOut, TypicalAmount: 229133.94,
			OldSenderBalance: 15325.0, NewSenderBalance: 0.0,
			OldDestBalance: 5083.0, NewDestBalance: 5083.0,
			FraudLabel: true, AccountAge: "3 months",
			CommonTxnTypes: []string{TypeCashOut, TypeTransfer},
			TxnCount:       24, FlaggedCount: 9,
		},
		{
			ID: "fraud-006", Name: "Rohit Saxena", Handle: "rohit.s@securebank",
			TxnType: TypeTransfer, TypicalAmount: 311685.89,
			OldSenderBalance: 10835.0, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "1 month",
			CommonTxnTypes: []string{TypeTransfer},
			TxnCount:       11, FlaggedCount: 4,
		},
		{
			ID: "fraud-007", Name: "Anil Kumar Singh", Handle: "anil.k@securebank",
			TxnType: TypeCashOut, TypicalAmount: 62927.08,
			OldSenderBalance: 62927.08, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "2 weeks",
			CommonTxnTypes: []string{TypeCashOut},
			TxnCount:       9, FlaggedCount: 2,
		},
		{
			ID: "fraud-008", Name: "Prakash Mehta", Handle: "prakash.m@securebank",
			TxnType: TypeTransfer, TypicalAmount: 1587927.08,
			OldSenderBalance: 1587927.08, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "1 week",
			CommonTxnTypes: []string{TypeTransfer, TypeCashOut},
			TxnCount:       7, FlaggedCount: 3,
		},
		{
			ID: "fraud-009", Name: "Sanjay Dubey", Handle: "sanjay.d@securebank",
			TxnType: TypeCashOut, TypicalAmount: 1000000.0,
			OldSenderBalance: 1000000.0, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "1 month",
			CommonTxnTypes: []string{TypeCashOut},
			TxnCount:       14, FlaggedCount: 6,
		},
		{
			ID: "fraud-010", Name: "Naveen Verma", Handle: "naveen.v@securebank",
			TxnType: TypeTransfer, TypicalAmount: 466721.29,
			OldSenderBalance: 466721.29, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "3 months",
			CommonTxnTypes: []string{TypeTransfer},
			TxnCount:       16, FlaggedCount: 5,
		},
		{
			ID: "fraud-011", Name: "Kiran Joshi", Handle: "kiran.j@securebank",
			TxnType: TypeCashOut, TypicalAmount: 851002.0,
			OldSenderBalance: 851002.0, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "2 weeks",
			CommonTxnTypes: []string{TypeCashOut, TypeTransfer},
			TxnCount:       10, FlaggedCount: 4,
		},
		{
			ID: "fraud-012", Name: "Vivek Chauhan", Handle: "vivek.c@securebank",
			TxnType: TypeTransfer, TypicalAmount: 2806246.0,
			OldSenderBalance: 2806246.0, NewSenderBalance: 0.0,
			OldDestBalance: 21845.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "1 week",
			CommonTxnTypes: []string{TypeTransfer},
			TxnCount:       5, FlaggedCount: 2,
		},
		{
			ID: "fraud-013", Name: "Gaurav Kapoor", Handle: "gaurav.k@securebank",
			TxnType: TypeCashOut, TypicalAmount: 419036.68,
			OldSenderBalance: 419036.68, NewSenderBalance: 0.0,
			OldDestBalance: 6973831.0, NewDestBalance: 6973831.0,
			FraudLabel: true, AccountAge: "1 month",
			CommonTxnTypes: []string{TypeCashOut},
			TxnCount:       21, FlaggedCount: 8,
		},
		{
			ID: "fraud-014", Name: "Ashok Bhatt", Handle: "ashok.b@securebank",
			TxnType: TypeTransfer, TypicalAmount: 10000000.0,
			OldSenderBalance: 10000000.0, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "1 week",
			CommonTxnTypes: []string{TypeTransfer},
			TxnCount:       4, FlaggedCount: 2,
		},
		{
			ID: "fraud-015", Name: "Dinesh Mishra", Handle: "dinesh.m@securebank",
			TxnType: TypeCashOut, TypicalAmount: 177416.47,
			OldSenderBalance: 177416.47, NewSenderBalance: 0.0,
			OldDestBalance: 0.0, NewDestBalance: 0.0,
			FraudLabel: true, AccountAge: "2 weeks",
			CommonTxnTypes: []string{TypeCashOut, TypeTransfer},
			TxnCount:       13, FlaggedCount: 5,
		},

		// Legitimate counterparties
		{
			ID: "legit-001", Name: "Priya Sharma", Handle: "priya@securebank",
			TxnType: TypePayment, TypicalAmount: 500.0,
			OldSenderBalance: 25000.0, NewSenderBalance: 24500.0,
			OldDestBalance: 10000.0, NewDestBalance: 10500.0,
			FraudLabel: false, AccountAge: "2 years",
			CommonTxnTypes: []string{TypePayment, TypeDebit},
			TxnCount:       312, FlaggedCount: 0,
		},
		{
			ID: "legit-002", Name: "Rahul Patel", Handle: "rahul@securebank",
			TxnType: TypeTransfer, TypicalAmount: 2500.0,
			OldSenderBalance: 50000.0, NewSenderBalance: 47500.0,
			OldDestBalance: 15000.0, NewDestBalance: 17500.0,
			FraudLabel: false, AccountAge: "3 years",
			CommonTxnTypes: []string{TypeTransfer, TypePayment},
			TxnCount:       428, FlaggedCount: 1,
		},
		{
			ID: "legit-003", Name: "Amit Kumar", Handle: "amit@securebank",
			TxnType: TypePayment, TypicalAmount: 1200.0,
			OldSenderBalance: 35000.0, NewSenderBalance: 33800.0,
			OldDestBalance: 20000.0, NewDestBalance: 21200.0,
			FraudLabel: false, AccountAge: "1 year",
			CommonTxnTypes: []string{TypePayment},
			TxnCount:       156, FlaggedCount: 0,
		},
		{
			ID: "legit-004", Name: "Sneha Reddy", Handle: "sneha@securebank",
			TxnType: TypeTransfer, TypicalAmount: 3000.0,
			OldSenderBalance: 45000.0, NewSenderBalance: 42000.0,
			OldDestBalance: 25000.0, NewDestBalance: 28000.0,
			FraudLabel: false, AccountAge: "2 years",
			CommonTxnTypes: []string{TypeTransfer, TypePayment},
			TxnCount:       267, FlaggedCount: 0,
		},
		{
			ID: "legit-005", Name: "Neha Singh", Handle: "neha@securebank",
			TxnType: TypePayment, TypicalAmount: 750.0,
			OldSenderBalance: 18000.0, NewSenderBalance: 17250.0,
			OldDestBalance: 8000.0, NewDestBalance: 8750.0,
			FraudLabel: false, AccountAge: "6 months",
			CommonTxnTypes: []string{TypePayment},
			TxnCount:       89, FlaggedCount: 0,
		},
		{
			ID: "legit-006", Name: "Arjun Nair", Handle: "arjun@securebank",
			TxnType: TypeDebit, TypicalAmount: 1500.0,
			OldSenderBalance: 40000.0, NewSenderBalance: 38500.0,
			OldDestBalance: 12000.0, NewDestBalance: 13500.0,
			FraudLabel: false, AccountAge: "3 years",
			CommonTxnTypes: []string{TypeDebit, TypePayment},
			TxnCount:       391, FlaggedCount: 1,
		},
		{
			ID: "legit-007", Name: "Kavita Jain", Handle: "kavita@securebank",
			TxnType: TypePayment, TypicalAmount: 890.0,
			OldSenderBalance: 22000.0, NewSenderBalance: 21110.0,
			OldDestBalance: 5000.0, NewDestBalance: 5890.0,
			FraudLabel: false, AccountAge: "1 year",
			CommonTxnTypes: []string{TypePayment},
			TxnCount:       134, FlaggedCount: 0,
		},
		{
			ID: "legit-008", Name: "Ravi Desai", Handle: "ravi@securebank",
			TxnType: TypeTransfer, TypicalAmount: 5000.0,
			OldSenderBalance: 75000.0, NewSenderBalance: 70000.0,
			OldDestBalance: 30000.0, NewDestBalance: 35000.0,
			FraudLabel: false, AccountAge: "2 years",
			CommonTxnTypes: []string{TypeTransfer},
			TxnCount:       245, FlaggedCount: 2,
		},
		{
			ID: "legit-009", Name: "Sunita Agarwal", Handle: "sunita@securebank",
			TxnType: TypePayment, TypicalAmount: 299.0,
			OldSenderBalance: 15000.0, NewSenderBalance: 14701.0,
			OldDestBalance: 7500.0, NewDestBalance: 7799.0,
			FraudLabel: false, AccountAge: "3 years",
			CommonTxnTypes: []string{TypePayment, TypeDebit},
			TxnCount:       467, FlaggedCount: 0,
		},
		{
			ID: "legit-010", Name: "Mohan Das", Handle: "mohan@securebank",
			TxnType: TypeTransfer, TypicalAmount: 1800.0,
			OldSenderBalance: 28000.0, NewSenderBalance: 26200.0,
			OldDestBalance: 9000.0, NewDestBalance: 10800.0,
			FraudLabel: false, AccountAge: "1 year",
			CommonTxnTypes: []string{TypeTransfer, TypePayment},
			TxnCount:       178, FlaggedCount: 0,
		},
		{
			ID: "legit-011", Name: "Lakshmi Menon", Handle: "lakshmi@securebank",
			TxnType: TypePayment, TypicalAmount: 450.0,
			OldSenderBalance: 12500.0, NewSenderBalance: 12050.0,
			OldDestBalance: 6000.0, NewDestBalance: 6450.0,
			FraudLabel: false, AccountAge: "6 months",
			CommonTxnTypes: []string{TypePayment},
			TxnCount:       72, FlaggedCount: 0,
		},
		{
			ID: "legit-012", Name: "Anand Krishnan", Handle: "anand@securebank",
			TxnType: TypeTransfer, TypicalAmount: 7500.0,
			OldSenderBalance: 85000.0, NewSenderBalance: 77500.0,
			OldDestBalance: 40000.0, NewDestBalance: 47500.0,
			FraudLabel: false, AccountAge: "3 years",
			CommonTxnTypes: []string{TypeTransfer},
			TxnCount:       356, FlaggedCount: 1,
		},
		{
			ID: "legit-013", Name: "Pooja Bansal", Handle: "pooja@securebank",
			TxnType: TypePayment, TypicalAmount: 1100.0,
			OldSenderBalance: 32000.0, NewSenderBalance: 30900.0,
			OldDestBalance: 18000.0, NewDestBalance: 19100.0,
			FraudLabel: false, AccountAge: "2 years",
			CommonTxnTypes: []string{TypePayment, TypeTransfer},
			TxnCount:       203, FlaggedCount: 0,
		},
		{
			ID: "legit-014", Name: "Vijay Thakur", Handle: "vijay@securebank",
			TxnType: TypeDebit, TypicalAmount: 2200.0,
			OldSenderBalance: 55000.0, NewSenderBalance: 52800.0,
			OldDestBalance: 22000.0, NewDestBalance: 24200.0,
			FraudLabel: false, AccountAge: "1 year",
			CommonTxnTypes: []string{TypeDebit},
			TxnCount:       145, FlaggedCount: 0,
		},
		{
			ID: "legit-015", Name: "Meera Iyer", Handle: "meera@securebank",
			TxnType: TypePayment, TypicalAmount: 680.0,
			OldSenderBalance: 19500.0, NewSenderBalance: 18820.0,
			OldDestBalance: 11000.0, NewDestBalance: 11680.0,
			FraudLabel: false, AccountAge: "3 years",
			CommonTxnTypes: []string{TypePayment},
			TxnCount:       412, FlaggedCount: 0,
		},
		{
			ID: "legit-016", Name: "Arun Pillai", Handle: "arun@securebank",
			TxnType: TypeTransfer, TypicalAmount: 4200.0,
			OldSenderBalance: 62000.0, NewSenderBalance: 57800.0,
			OldDestBalance: 27000.0, NewDestBalance: 31200.0,
			FraudLabel: false, AccountAge: "2 years",
			CommonTxnTypes: []string{TypeTransfer, TypePayment},
			TxnCount:       289, FlaggedCount: 1,
		},
		{
			ID: "legit-017", Name: "Deepika Shah", Handle: "deepika@securebank",
			TxnType: TypePayment, TypicalAmount: 999.0,
			OldSenderBalance: 28500.0, NewSenderBalance: 27501.0,
			OldDestBalance: 14000.0, NewDestBalance: 14999.0,
			FraudLabel: false, AccountAge: "6 months",
			CommonTxnTypes: []string{TypePayment},
			TxnCount:       98, FlaggedCount: 0,
		},
		{
			ID: "legit-018", Name: "Santosh Kulkarni", Handle: "santosh@securebank",
			TxnType: TypeTransfer, TypicalAmount: 6500.0,
			OldSenderBalance: 78000.0, NewSenderBalance: 71500.0,
			OldDestBalance: 35000.0, NewDestBalance: 41500.0,
			FraudLabel: false, AccountAge: "3 years",
			CommonTxnTypes: []string{TypeTransfer},
			TxnCount:       334, FlaggedCount: 2,
		},
		{
			ID: "legit-019", Name: "Radha Venkatesh", Handle: "radha@securebank",
			TxnType: TypePayment, TypicalAmount: 350.0,
			OldSenderBalance: 16000.0, NewSenderBalance: 15650.0,
			OldDestBalance: 8500.0, NewDestBalance: 8850.0,
			FraudLabel: false, AccountAge: "1 year",
			CommonTxnTypes: []string{TypePayment, TypeDebit},
			TxnCount:       167, FlaggedCount: 0,
		},
		{
			ID: "legit-020", Name: "Harish Rao", Handle: "harish@securebank",
			TxnType: TypeDebit, TypicalAmount: 1750.0,
			OldSenderBalance: 42000.0, NewSenderBalance: 40250.0,
			OldDestBalance: 19000.0, NewDestBalance: 20750.0,
			FraudLabel: false, AccountAge: "2 years",
			CommonTxnTypes: []string{TypeDebit, TypePayment},
			TxnCount:       221, FlaggedCount: 0,
		},
	}
}
