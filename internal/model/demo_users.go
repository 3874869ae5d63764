package model

// DemoUsers returns the accounts offered on the login screen, one per role.
func DemoUsers() []User {
	return []User{
		{Name: "Ramesh Kumar", RoleType: RoleFarmer, Organization: "Himalayan Herb Collective", Permissions: []Permission{PermCollection, PermGPSTracking}},
		{Name: "Priya Sharma", RoleType: RoleProcessor, Organization: "Ayush Botanicals Processing Unit", Permissions: []Permission{PermProcessing, PermQualityControl, PermSupplyChainView}},
		{Name: "Dr. Anil Verma", RoleType: RoleLab, Organization: "Dhanvantari Quality Labs", Permissions: []Permission{PermLabTesting, PermCertification, PermCompliance}},
		{Name: "Meera Iyer", RoleType: RoleConsumer, Organization: "Visuddha Consumer Network", Permissions: []Permission{PermProductScan, PermVerification}},
		{Name: "Arjun Nair", RoleType: RoleAdmin, Organization: "Visuddha Platform", Permissions: []Permission{PermFullAccess}},
	}
}
