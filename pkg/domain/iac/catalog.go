package iac

// opaCatalog is the built-in library of Rego policies, keyed by dimension.
// Rule bodies are advisory templates for deployment in a customer's own
// OPA setup.
var opaCatalog = []OPAPolicy{
	{
		Name:         "require_encrypted_storage",
		DimensionKey: "arch_sec",
		ResourceType: "aws_s3_bucket",
		Severity:     "high",
		Rego: `package quiz2biz.storage_encryption

deny[msg] {
	input.resource_type == "aws_s3_bucket"
	not input.config.server_side_encryption_configuration
	msg := sprintf("S3 bucket '%s' has no server-side encryption configured", [input.name])
}
`,
		TestCases: []OPATestCase{
			{
				Name:     "unencrypted bucket denied",
				Input:    `{"resource_type": "aws_s3_bucket", "name": "data", "config": {}}`,
				WantDeny: true,
			},
			{
				Name:     "encrypted bucket allowed",
				Input:    `{"resource_type": "aws_s3_bucket", "name": "data", "config": {"server_side_encryption_configuration": {}}}`,
				WantDeny: false,
			},
		},
	},
	{
		Name:         "deny_public_ingress",
		DimensionKey: "arch_sec",
		ResourceType: "aws_security_group",
		Severity:     "critical",
		Rego: `package quiz2biz.network_ingress

deny[msg] {
	input.resource_type == "aws_security_group"
	rule := input.config.ingress[_]
	rule.cidr_blocks[_] == "0.0.0.0/0"
	rule.from_port <= 22
	rule.to_port >= 22
	msg := sprintf("Security group '%s' exposes SSH to the internet", [input.name])
}
`,
		TestCases: []OPATestCase{
			{
				Name:     "open ssh denied",
				Input:    `{"resource_type": "aws_security_group", "name": "sg", "config": {"ingress": [{"cidr_blocks": ["0.0.0.0/0"], "from_port": 22, "to_port": 22}]}}`,
				WantDeny: true,
			},
		},
	},
	{
		Name:         "require_resource_tags",
		DimensionKey: "devops_iac",
		ResourceType: "*",
		Severity:     "medium",
		Rego: `package quiz2biz.tagging

required_tags := {"owner", "environment", "cost-center"}

deny[msg] {
	some tag in required_tags
	not input.config.tags[tag]
	msg := sprintf("Resource '%s' is missing required tag '%s'", [input.name, tag])
}
`,
	},
	{
		Name:         "deny_unpinned_module_source",
		DimensionKey: "devops_iac",
		ResourceType: "module",
		Severity:     "medium",
		Rego: `package quiz2biz.module_pinning

deny[msg] {
	input.resource_type == "module"
	not contains(input.config.source, "?ref=")
	msg := sprintf("Module '%s' does not pin its source to a version", [input.name])
}
`,
	},
	{
		Name:         "require_pii_data_classification",
		DimensionKey: "privacy_legal",
		ResourceType: "aws_s3_bucket",
		Severity:     "high",
		Rego: `package quiz2biz.data_classification

deny[msg] {
	input.resource_type == "aws_s3_bucket"
	not input.config.tags["data-classification"]
	msg := sprintf("Bucket '%s' carries no data-classification tag", [input.name])
}
`,
	},
	{
		Name:         "require_log_retention",
		DimensionKey: "service_ops",
		ResourceType: "aws_cloudwatch_log_group",
		Severity:     "medium",
		Rego: `package quiz2biz.log_retention

deny[msg] {
	input.resource_type == "aws_cloudwatch_log_group"
	not input.config.retention_in_days
	msg := sprintf("Log group '%s' has no retention period set", [input.name])
}
`,
	},
	{
		Name:         "require_training_data_residency",
		DimensionKey: "data_ai",
		ResourceType: "aws_s3_bucket",
		Severity:     "high",
		Rego: `package quiz2biz.data_residency

allowed_regions := {"eu-west-1", "eu-central-1"}

deny[msg] {
	input.resource_type == "aws_s3_bucket"
	input.config.tags["purpose"] == "ml-training"
	not allowed_regions[input.region]
	msg := sprintf("Training data bucket '%s' is outside the allowed regions", [input.name])
}
`,
	},
}

// terraformCatalog is the built-in library of terraform-compliance
// features, keyed by dimension.
var terraformCatalog = []TerraformRule{
	{
		Name:         "encryption_at_rest",
		DimensionKey: "arch_sec",
		ResourceType: "aws_s3_bucket",
		Feature: `Feature: Storage must be encrypted at rest
  In order to protect data at rest
  As engineers
  We'll enforce encryption on storage resources

  Scenario: Ensure S3 buckets are encrypted
    Given I have aws_s3_bucket defined
    Then it must contain server_side_encryption_configuration
`,
	},
	{
		Name:         "no_public_ssh",
		DimensionKey: "arch_sec",
		ResourceType: "aws_security_group",
		Feature: `Feature: No administrative ports open to the world
  In order to reduce attack surface
  As engineers
  We'll forbid world-open SSH

  Scenario: Ensure no security group allows SSH from 0.0.0.0/0
    Given I have aws_security_group defined
    When it contains ingress
    Then it must not have ssh port open to internet
`,
	},
	{
		Name:         "mandatory_tags",
		DimensionKey: "devops_iac",
		ResourceType: "*",
		Feature: `Feature: All resources carry mandatory tags
  In order to keep ownership and cost attribution intact
  As engineers
  We'll require a fixed tag set

  Scenario: Ensure mandatory tags are present
    Given I have resource that supports tags defined
    Then it must contain tags
    And its value must contain owner
    And its value must contain environment
`,
	},
	{
		Name:         "log_retention_defined",
		DimensionKey: "service_ops",
		ResourceType: "aws_cloudwatch_log_group",
		Feature: `Feature: Log groups define a retention period
  In order to meet operational and legal retention duties
  As engineers
  We'll require explicit retention settings

  Scenario: Ensure log retention is set
    Given I have aws_cloudwatch_log_group defined
    Then it must contain retention_in_days
`,
	},
	{
		Name:         "pii_buckets_classified",
		DimensionKey: "privacy_legal",
		ResourceType: "aws_s3_bucket",
		Feature: `Feature: Buckets declare a data classification
  In order to keep personal data identifiable in infrastructure
  As engineers
  We'll require classification tags on storage

  Scenario: Ensure buckets carry a data-classification tag
    Given I have aws_s3_bucket defined
    Then it must contain tags
    And its value must contain data-classification
`,
	},
}
