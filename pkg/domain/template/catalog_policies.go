package template

// builtinPolicyTemplates returns the policy template catalog. Only a
// subset of dimensions carries an explicit template; the policy generator
// falls back to a generic single-statement policy for the rest.
func builtinPolicyTemplates() map[string]PolicyTemplate {
	templates := []PolicyTemplate{
		{
			DimensionKey:  "arch_sec",
			Title:         "Information Security Architecture Policy",
			Objective:     "Ensure systems are designed, built, and operated with security controls proportionate to the risks they carry. Current assessed coverage for {{dimension}} is {{coverage}}.",
			Scope:         "All production systems, the infrastructure they run on, and the teams that build and operate them.",
			StandardTitle: "Secure Architecture Standard",
			Statements: []StatementTemplate{
				{Text: "Security requirements SHALL be defined before new systems or significant changes enter implementation.", Level: LevelShall},
				{Text: "Access to production systems SHALL follow least privilege and SHALL be reviewed at least quarterly.", Level: LevelShall},
				{Text: "Data in transit and at rest SHALL be encrypted using current, industry-accepted algorithms.", Level: LevelShall},
				{Text: "Threat modeling SHOULD be performed for every externally exposed service.", Level: LevelShould},
				{Text: "Teams MAY adopt additional hardening baselines beyond this policy where operationally justified.", Level: LevelMay},
			},
			Requirements: []RequirementTemplate{
				{
					Description:   "Addressed practice: {{best_practice}}",
					Specification: "Implement and maintain the control for all in-scope systems; deviations require a recorded, time-boxed exception approved by the security owner.",
				},
				{
					Description:   "Access control review",
					Specification: "Production access rights are reviewed quarterly; removals are executed within five working days of the review.",
				},
				{
					Description:   "Encryption baseline",
					Specification: "TLS 1.2 or later for data in transit; AES-128 or stronger for data at rest; keys rotate on a defined schedule.",
				},
			},
			Steps: []StepTemplate{
				{Description: "Identify the systems affected by the control and their owners.", ResponsibleRole: "Security Engineer"},
				{Description: "Implement or update the control per the standard requirements.", ResponsibleRole: "Platform Engineer"},
				{Description: "Collect and file implementation evidence against {{standard_refs}}.", ResponsibleRole: "Security Engineer"},
				{Description: "Review evidence and sign off the control as operating.", ResponsibleRole: "CISO"},
			},
		},
		{
			DimensionKey:  "devops_iac",
			Title:         "Secure Delivery and Infrastructure-as-Code Policy",
			Objective:     "Ensure changes reach production through controlled, reviewable, automated pipelines. Current assessed coverage for {{dimension}} is {{coverage}}.",
			Scope:         "All deployment pipelines, infrastructure definitions, and the environments they manage.",
			StandardTitle: "Delivery Pipeline Standard",
			Statements: []StatementTemplate{
				{Text: "All production infrastructure SHALL be defined as code and changed only through version-controlled pipelines.", Level: LevelShall},
				{Text: "Every production change SHALL be peer reviewed before merge.", Level: LevelShall},
				{Text: "Pipelines SHALL run automated policy checks against infrastructure definitions before apply.", Level: LevelShall},
				{Text: "Deployment pipelines SHOULD support automated rollback to the previous known-good state.", Level: LevelShould},
			},
			Requirements: []RequirementTemplate{
				{
					Description:   "Addressed practice: {{best_practice}}",
					Specification: "The practice is enforced by pipeline configuration; manual out-of-band changes to production are detected and reverted.",
				},
				{
					Description:   "Policy-as-code gate",
					Specification: "OPA or equivalent policy checks run on every infrastructure change set; a failing mandatory rule blocks the apply.",
				},
			},
			Steps: []StepTemplate{
				{Description: "Codify the affected infrastructure and import existing state.", ResponsibleRole: "Platform Engineer"},
				{Description: "Add the policy gate to the pipeline and verify it blocks a known-bad change.", ResponsibleRole: "DevOps Engineer"},
				{Description: "Document the pipeline flow and rollback procedure.", ResponsibleRole: "DevOps Engineer"},
				{Description: "Approve the pipeline as the sole path to production.", ResponsibleRole: "Engineering Manager"},
			},
		},
		{
			DimensionKey:  "privacy_legal",
			Title:         "Data Protection and Privacy Policy",
			Objective:     "Ensure personal data is processed lawfully, transparently, and only as far as needed. Current assessed coverage for {{dimension}} is {{coverage}}.",
			Scope:         "All processing of personal data by the organization and its processors.",
			StandardTitle: "Personal Data Handling Standard",
			Statements: []StatementTemplate{
				{Text: "A lawful basis SHALL be recorded before any new processing of personal data begins.", Level: LevelShall},
				{Text: "Records of processing activities SHALL be maintained and reviewed at least annually.", Level: LevelShall},
				{Text: "Data subject requests SHALL be fulfilled within the statutory deadline.", Level: LevelShall},
				{Text: "Privacy impact assessments SHOULD be performed for processing likely to result in high risk.", Level: LevelShould},
				{Text: "Teams MAY pseudonymize datasets beyond the mandated minimum where it does not impair the stated purpose.", Level: LevelMay},
			},
			Requirements: []RequirementTemplate{
				{
					Description:   "Addressed practice: {{best_practice}}",
					Specification: "The measure is implemented, reflected in the records of processing, and evidenced against {{standard_refs}}.",
				},
				{
					Description:   "Retention enforcement",
					Specification: "Retention periods are defined per data category and enforced by automated deletion where technically feasible.",
				},
			},
			Steps: []StepTemplate{
				{Description: "Map the processing activities affected by the gap.", ResponsibleRole: "Data Protection Officer"},
				{Description: "Implement the required measure and update processing records.", ResponsibleRole: "Product Engineer"},
				{Description: "Update user-facing notices where the change affects them.", ResponsibleRole: "Legal Counsel"},
				{Description: "File evidence and confirm closure of the gap.", ResponsibleRole: "Data Protection Officer"},
			},
		},
	}

	out := make(map[string]PolicyTemplate, len(templates))
	for _, t := range templates {
		out[t.DimensionKey] = t
	}
	return out
}
