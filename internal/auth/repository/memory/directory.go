package memory

import "transaction-coordinator/internal/model"

const officeAddress = "123 Main St, Philadelphia, PA"

// DemoUsers is the office directory served by the demo backend.
func DemoUsers() []model.User {
	return []model.User{
		{ID: "1", FirstName: "Admin", LastName: "User", Email: "admin@parealestate.com", Role: model.RoleKindAdmin,
			LicenseNumber: "ADM001", Phone: "555-0101", OfficeAddress: officeAddress},
		{ID: "2", FirstName: "Sarah", LastName: "Wilson", Email: "sarah@parealestate.com", Role: model.RoleKindAgent,
			LicenseNumber: "AGT002", Phone: "555-0102", OfficeAddress: officeAddress},
		{ID: "3", FirstName: "John", LastName: "Smith", Email: "john.smith@email.com", Role: model.RoleKindClient,
			Phone: "555-0103", AgentID: "2"},
		{ID: "4", FirstName: "Tom", LastName: "Davis", Email: "tom@parealestate.com", Role: model.RoleKindAgent,
			LicenseNumber: "AGT004", Phone: "555-0104", OfficeAddress: officeAddress},
		{ID: "5", FirstName: "Emily", LastName: "Chen", Email: "emily@parealestate.com", Role: model.RoleKindAgent,
			LicenseNumber: "AGT005", Phone: "555-0105", OfficeAddress: officeAddress},
		{ID: "6", FirstName: "Michael", LastName: "Lee", Email: "michael@parealestate.com", Role: model.RoleKindAgent,
			LicenseNumber: "AGT006", Phone: "555-0106", OfficeAddress: officeAddress},
		{ID: "7", FirstName: "Jennifer", LastName: "Kim", Email: "jennifer@parealestate.com", Role: model.RoleKindAgent,
			LicenseNumber: "AGT007", Phone: "555-0107", OfficeAddress: officeAddress},
	}
}
