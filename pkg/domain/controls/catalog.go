package controls

// builtinControlCatalog returns the static framework control lists. Control
// IDs follow ISO/IEC 27001:2022 Annex A, NIST CSF 1.1 subcategories, and
// OWASP ASVS 4.0 chapter numbering.
func builtinControlCatalog() map[Framework][]Control {
	return map[Framework][]Control{
		FrameworkISO27001: {
			{ID: "A.5.1", Description: "Policies for information security", DimensionKeys: []string{"compliance_policy", "strategy"}},
			{ID: "A.5.9", Description: "Inventory of information and other associated assets", DimensionKeys: []string{"arch_sec", "service_ops"}},
			{ID: "A.5.15", Description: "Access control", DimensionKeys: []string{"arch_sec"}},
			{ID: "A.5.23", Description: "Information security for use of cloud services", DimensionKeys: []string{"arch_sec", "devops_iac"}},
			{ID: "A.5.34", Description: "Privacy and protection of PII", DimensionKeys: []string{"privacy_legal", "data_ai"}},
			{ID: "A.5.36", Description: "Compliance with policies, rules and standards for information security", DimensionKeys: []string{"compliance_policy"}},
			{ID: "A.6.3", Description: "Information security awareness, education and training", DimensionKeys: []string{"people_change"}},
			{ID: "A.8.2", Description: "Privileged access rights", DimensionKeys: []string{"arch_sec"}},
			{ID: "A.8.9", Description: "Configuration management", DimensionKeys: []string{"devops_iac", "service_ops"}},
			{ID: "A.8.16", Description: "Monitoring activities", DimensionKeys: []string{"service_ops"}},
			{ID: "A.8.24", Description: "Use of cryptography", DimensionKeys: []string{"arch_sec", "privacy_legal"}},
			{ID: "A.8.25", Description: "Secure development life cycle", DimensionKeys: []string{"devops_iac", "quality_test"}},
			{ID: "A.8.28", Description: "Secure coding", DimensionKeys: []string{"quality_test", "arch_sec"}},
			{ID: "A.8.29", Description: "Security testing in development and acceptance", DimensionKeys: []string{"quality_test"}},
			{ID: "A.8.31", Description: "Separation of development, test and production environments", DimensionKeys: []string{"devops_iac"}},
			{ID: "A.8.32", Description: "Change management", DimensionKeys: []string{"devops_iac", "service_ops"}},
		},
		FrameworkNISTCSF: {
			{ID: "ID.AM-1", Description: "Physical devices and systems within the organization are inventoried", DimensionKeys: []string{"service_ops", "arch_sec"}},
			{ID: "ID.GV-1", Description: "Organizational cybersecurity policy is established and communicated", DimensionKeys: []string{"compliance_policy", "strategy"}},
			{ID: "ID.GV-3", Description: "Legal and regulatory requirements regarding cybersecurity are understood and managed", DimensionKeys: []string{"privacy_legal", "compliance_policy"}},
			{ID: "ID.RA-1", Description: "Asset vulnerabilities are identified and documented", DimensionKeys: []string{"arch_sec"}},
			{ID: "ID.BE-3", Description: "Priorities for organizational mission, objectives, and activities are established", DimensionKeys: []string{"strategy", "finance"}},
			{ID: "PR.AC-1", Description: "Identities and credentials are issued, managed, verified, revoked, and audited", DimensionKeys: []string{"arch_sec"}},
			{ID: "PR.AC-4", Description: "Access permissions and authorizations are managed, incorporating least privilege", DimensionKeys: []string{"arch_sec"}},
			{ID: "PR.AT-1", Description: "All users are informed and trained", DimensionKeys: []string{"people_change"}},
			{ID: "PR.DS-1", Description: "Data-at-rest is protected", DimensionKeys: []string{"arch_sec", "privacy_legal", "data_ai"}},
			{ID: "PR.IP-1", Description: "A baseline configuration of IT systems is created and maintained", DimensionKeys: []string{"devops_iac"}},
			{ID: "PR.IP-2", Description: "A system development life cycle to manage systems is implemented", DimensionKeys: []string{"quality_test", "requirements"}},
			{ID: "PR.IP-3", Description: "Configuration change control processes are in place", DimensionKeys: []string{"devops_iac", "service_ops"}},
			{ID: "DE.CM-1", Description: "The network is monitored to detect potential cybersecurity events", DimensionKeys: []string{"service_ops"}},
			{ID: "RS.RP-1", Description: "Response plan is executed during or after an incident", DimensionKeys: []string{"service_ops"}},
		},
		FrameworkOWASPASVS: {
			{ID: "V1.1", Description: "Secure software development lifecycle requirements", DimensionKeys: []string{"devops_iac", "quality_test", "requirements"}},
			{ID: "V1.2", Description: "Authentication architecture requirements", DimensionKeys: []string{"arch_sec"}},
			{ID: "V2.1", Description: "Password security requirements", DimensionKeys: []string{"arch_sec"}},
			{ID: "V4.1", Description: "General access control design", DimensionKeys: []string{"arch_sec"}},
			{ID: "V6.2", Description: "Algorithms: approved cryptographic algorithms in use", DimensionKeys: []string{"arch_sec"}},
			{ID: "V8.3", Description: "Sensitive private data protection", DimensionKeys: []string{"privacy_legal", "data_ai"}},
			{ID: "V9.1", Description: "Client communication security: TLS everywhere", DimensionKeys: []string{"arch_sec"}},
			{ID: "V10.3", Description: "Application integrity: deployed code integrity controls", DimensionKeys: []string{"devops_iac"}},
			{ID: "V11.1", Description: "Business logic security requirements", DimensionKeys: []string{"requirements", "quality_test"}},
			{ID: "V14.1", Description: "Build and deploy: hardened, repeatable build processes", DimensionKeys: []string{"devops_iac"}},
			{ID: "V14.2", Description: "Dependency: components are up to date and from trusted sources", DimensionKeys: []string{"devops_iac", "quality_test"}},
		},
	}
}
