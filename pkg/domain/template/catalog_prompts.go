package template

// builtinPromptTemplates returns the prompt template catalog, one entry
// per readiness dimension. Task conditions reference gap fields through
// the closed Field set so a typo fails at init, not silently at runtime.
func builtinPromptTemplates() map[string]PromptTemplate {
	templates := []PromptTemplate{
		{
			DimensionKey: "arch_sec",
			Goal: "Close the security architecture gap in {{dimension}}: current coverage is {{coverage}} " +
				"against the expectation that {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Document the current state for this control area, including systems in scope and existing compensating measures. Stated answer: {{answer}}"},
				{Description: "Perform a threat-model pass over the affected components and record the attack paths this gap leaves open."},
				{Description: "Design the target control: {{best_practice}}"},
				{
					Description: "Escalate to the security owner and schedule remediation within the current sprint given the elevated residual risk of {{residual_risk}}.",
					Condition:   condPtr(MustCondition(FieldResidualRisk, OpGt, 0.15)),
				},
				{Description: "Implement the control and capture before/after evidence (configuration exports, screenshots, scan output)."},
				{Description: "Verify the control against {{standard_refs}} and record the verification outcome."},
			},
			AcceptanceCriteria: []string{
				"The control described in the best practice is implemented and enabled in all in-scope environments",
				"Verification evidence references {{standard_refs}}",
				"A rollback or exception path is documented for the control",
			},
			Constraints: []string{
				"Do not weaken existing controls while introducing the new one",
				"Changes to production security settings require a peer-reviewed change record",
			},
			Deliverables: []string{
				"Updated security architecture note covering {{dimension}}",
				"Evidence bundle for the implemented control",
			},
			EvidenceType:    "Configuration",
			BaseEffortHours: 12,
		},
		{
			DimensionKey: "devops_iac",
			Goal: "Bring delivery and infrastructure-as-code practice in {{dimension}} up to the expected baseline: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Inventory the pipelines and infrastructure modules touched by this gap. Current coverage: {{coverage}}."},
				{Description: "Define the target pipeline or IaC pattern implementing: {{best_practice}}"},
				{
					Description: "Treat this as a priority item: residual risk {{residual_risk}} exceeds the high-priority threshold, so carve out dedicated capacity rather than folding it into routine work.",
					Condition:   condPtr(MustCondition(FieldResidualRisk, OpGt, 0.15)),
				},
				{Description: "Implement the change behind a feature branch and run it against a non-production environment first."},
				{Description: "Add an automated check (pipeline gate, policy rule, or pre-commit hook) that prevents regression."},
			},
			AcceptanceCriteria: []string{
				"The practice is enforced automatically, not by convention",
				"A dry run against non-production infrastructure passes",
				"Regression is blocked by a pipeline gate or policy check",
			},
			Constraints: []string{
				"No direct changes to production infrastructure outside the pipeline",
				"Keep existing deployment cadence intact while the change lands",
			},
			Deliverables: []string{
				"Updated pipeline or IaC module implementing the practice",
				"Automated regression check with a link to a passing run",
			},
			EvidenceType:    "Pipeline",
			BaseEffortHours: 10,
		},
		{
			DimensionKey: "quality_test",
			Goal: "Raise test and quality practice in {{dimension}} to the expected level: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Measure the current baseline (coverage figures, escape rate, flake rate) for the affected area. Reported state: {{answer}}"},
				{Description: "Agree the target quality bar with the team and write it down where the team plans work."},
				{Description: "Close the gap: {{best_practice}}"},
				{
					Description: "Add the missing tests incrementally, starting from the highest-risk paths identified by the {{residual_risk}} residual risk score.",
					Condition:   condPtr(MustCondition(FieldCoverage, OpLt, 0.5)),
				},
				{Description: "Wire the quality bar into CI so a drop below it fails the build."},
			},
			AcceptanceCriteria: []string{
				"The agreed quality bar is enforced in CI",
				"Baseline and target metrics are recorded and visible to the team",
			},
			Constraints: []string{
				"New tests must be deterministic; quarantine flaky tests rather than deleting them",
			},
			Deliverables: []string{
				"Quality bar definition and CI enforcement",
				"Baseline/target metrics snapshot",
			},
			EvidenceType:    "Report",
			BaseEffortHours: 8,
		},
		{
			DimensionKey: "finance",
			Goal: "Establish the financial control this gap leaves open in {{dimension}}: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Document current spend visibility and approval flow for the affected area. Stated answer: {{answer}}"},
				{Description: "Define the control: {{best_practice}}"},
				{Description: "Assign an accountable owner and a review cadence for the control."},
				{
					Description: "Brief leadership on exposure: the residual risk of {{residual_risk}} indicates material financial uncertainty.",
					Condition:   condPtr(MustCondition(FieldResidualRisk, OpGt, 0.2)),
				},
				{Description: "Run the control once end-to-end and file the produced record as evidence."},
			},
			AcceptanceCriteria: []string{
				"The control has a named owner and a recurring calendar entry",
				"One completed control run is on file",
			},
			Constraints: []string{
				"Keep the control lightweight enough to run at the stated cadence without dedicated tooling",
			},
			Deliverables: []string{
				"Control definition with owner and cadence",
				"Record of the first completed run",
			},
			EvidenceType:    "Document",
			BaseEffortHours: 6,
		},
		{
			DimensionKey: "strategy",
			Goal: "Resolve the strategic-alignment gap in {{dimension}}: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Capture the current position in writing, including what was answered in the assessment: {{answer}}"},
				{Description: "Draft the missing strategic artifact ({{best_practice}}) and circulate it to decision makers."},
				{Description: "Hold a decision session and record the agreed direction and its owners."},
				{Description: "Publish the outcome where the whole organization can find it and link it from planning artifacts."},
			},
			AcceptanceCriteria: []string{
				"The strategic artifact exists, names owners, and is discoverable",
				"Planning artifacts reference it",
			},
			Constraints: []string{
				"Decisions recorded here must name a single accountable owner each",
			},
			Deliverables: []string{
				"Published strategic artifact",
				"Decision record with owners",
			},
			EvidenceType:    "Document",
			BaseEffortHours: 6,
		},
		{
			DimensionKey: "requirements",
			Goal: "Fix the requirements-practice gap in {{dimension}}: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Review how requirements are currently captured and traced for the affected product area. Context: {{explainer}}"},
				{Description: "Introduce the missing practice: {{best_practice}}"},
				{Description: "Backfill the practice for in-flight work items so the current cycle benefits."},
				{Description: "Add the practice to the definition of ready/done so it persists."},
			},
			AcceptanceCriteria: []string{
				"New work items follow the practice",
				"The definition of ready/done encodes it",
			},
			Constraints: []string{
				"Do not block in-flight delivery while backfilling",
			},
			Deliverables: []string{
				"Updated working agreement or definition of ready/done",
				"Sample of three work items following the practice",
			},
			EvidenceType:    "Document",
			BaseEffortHours: 5,
		},
		{
			DimensionKey: "data_ai",
			Goal: "Close the data and AI governance gap in {{dimension}}: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Map the data flows and models affected by this gap, including sources, storage, and downstream consumers."},
				{Description: "Implement the expected practice: {{best_practice}}"},
				{
					Description: "Review the affected processing against privacy commitments before enabling it further; residual risk is {{residual_risk}}.",
					Condition:   condPtr(MustCondition(FieldResidualRisk, OpGt, 0.15)),
				},
				{Description: "Document data quality and retention rules for the affected datasets."},
				{Description: "Add monitoring for the practice (data quality checks, drift alerts, access reviews as applicable)."},
			},
			AcceptanceCriteria: []string{
				"Data flow map covers all affected datasets and models",
				"The practice is active and monitored",
			},
			Constraints: []string{
				"No new processing of personal data without a recorded lawful basis",
			},
			Deliverables: []string{
				"Data flow map",
				"Practice implementation with monitoring evidence",
			},
			EvidenceType:    "Report",
			BaseEffortHours: 10,
		},
		{
			DimensionKey: "privacy_legal",
			Goal: "Remediate the privacy/legal compliance gap in {{dimension}}: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Identify the processing activities and legal obligations touched by this gap. References: {{standard_refs}}"},
				{Description: "Implement the required measure: {{best_practice}}"},
				{
					Description: "Consult counsel or the DPO before closing this item; the residual risk of {{residual_risk}} suggests regulatory exposure.",
					Condition:   condPtr(MustCondition(FieldResidualRisk, OpGt, 0.15)),
				},
				{Description: "Update the records of processing and any user-facing notices affected by the change."},
				{Description: "File the produced artifacts in the compliance evidence store."},
			},
			AcceptanceCriteria: []string{
				"The measure is implemented and reflected in processing records",
				"Evidence is filed and referenced against {{standard_refs}}",
			},
			Constraints: []string{
				"User-facing notice changes require legal review before publication",
			},
			Deliverables: []string{
				"Updated processing records and notices",
				"Filed compliance evidence",
			},
			EvidenceType:    "Document",
			BaseEffortHours: 8,
		},
		{
			DimensionKey: "service_ops",
			Goal: "Close the service operations gap in {{dimension}}: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Describe the current operational practice for the affected service, including who is paged and when. Stated answer: {{answer}}"},
				{Description: "Implement the expected practice: {{best_practice}}"},
				{
					Description: "Run a game day or tabletop exercise to validate the practice under realistic failure conditions.",
					Condition:   condPtr(MustCondition(FieldSeverityWeight, OpGt, 0.6)),
				},
				{Description: "Record the practice in the runbook and link it from the on-call handbook."},
			},
			AcceptanceCriteria: []string{
				"The practice is documented in the runbook",
				"On-call staff can locate and execute it",
			},
			Constraints: []string{
				"Exercises run against non-production or with an approved blast radius",
			},
			Deliverables: []string{
				"Updated runbook entry",
				"Exercise or validation record",
			},
			EvidenceType:    "Runbook",
			BaseEffortHours: 8,
		},
		{
			DimensionKey: "compliance_policy",
			Goal: "Establish the missing policy artifact for {{dimension}}: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Confirm which frameworks require this artifact: {{standard_refs}}"},
				{Description: "Draft the policy implementing: {{best_practice}}"},
				{Description: "Route the draft through review and formal approval, recording approvers and date."},
				{Description: "Publish the policy and schedule its annual review."},
				{
					Description: "Communicate the policy to affected staff and track acknowledgement.",
					Condition:   condPtr(MustCondition(FieldSeverityWeight, OpGt, 0.4)),
				},
			},
			AcceptanceCriteria: []string{
				"Approved policy is published with an owner and review date",
				"Mapped framework controls ({{standard_refs}}) are referenced in the policy",
			},
			Constraints: []string{
				"Policy language must use SHALL/SHOULD/MAY consistently",
			},
			Deliverables: []string{
				"Approved and published policy document",
				"Acknowledgement or communication record",
			},
			EvidenceType:    "Policy",
			BaseEffortHours: 6,
		},
		{
			DimensionKey: "people_change",
			Goal: "Address the people and change-management gap in {{dimension}}: {{best_practice}}",
			Tasks: []TaskTemplate{
				{Description: "Assess current skills, ownership, and communication paths for the affected area. Notes from assessment: {{notes}}"},
				{Description: "Implement the expected practice: {{best_practice}}"},
				{Description: "Schedule the enablement or training the practice requires and record attendance."},
				{Description: "Set a follow-up checkpoint to confirm the change stuck."},
			},
			AcceptanceCriteria: []string{
				"Practice is in place with a named owner",
				"Enablement has happened and attendance is recorded",
			},
			Constraints: []string{
				"Changes to team responsibilities are agreed with the people affected, not announced to them",
			},
			Deliverables: []string{
				"Practice description with owner",
				"Enablement record and follow-up checkpoint date",
			},
			EvidenceType:    "Record",
			BaseEffortHours: 5,
		},
	}

	out := make(map[string]PromptTemplate, len(templates))
	for _, t := range templates {
		out[t.DimensionKey] = t
	}
	return out
}

func condPtr(c Condition) *Condition {
	return &c
}
