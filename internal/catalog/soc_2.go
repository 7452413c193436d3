package catalog

var soc2 = &Framework{
	ID:   "SOC_2",
	Name: "SOC 2 Trust Services Criteria",
	Categories: []Category{
		{
			Name:        "Security",
			Description: "The system is protected against unauthorized access, both physical and logical.",
			Controls: []Control{
				{
					ID:             "CC6.1",
					Text:           "The entity implements logical access security software, infrastructure, and architectures over protected information assets to protect them from security events.",
					Recommendation: "Document the logical access architecture: identity management, authentication requirements, and network protections over information assets.",
				},
				{
					ID:             "CC6.2",
					Text:           "Prior to issuing system credentials and granting system access, the entity registers and authorizes new internal and external users.",
					Recommendation: "Require documented registration and authorization before any credential issuance, with access tied to role and removed on deregistration.",
				},
				{
					ID:             "CC7.2",
					Text:           "The entity monitors system components and the operation of those components for anomalies that are indicative of malicious acts, natural disasters, and errors.",
					Recommendation: "Implement monitoring for anomalous activity across system components with defined alert thresholds and response ownership.",
				},
			},
		},
		{
			Name:        "Availability",
			Description: "The system is available for operation and use as committed or agreed.",
			Controls: []Control{
				{
					ID:             "A1.2",
					Text:           "The entity authorizes, designs, develops or acquires, implements, operates, approves, maintains, and monitors environmental protections, software, data backup processes, and recovery infrastructure.",
					Recommendation: "Document backup and recovery infrastructure, environmental protections, and the monitoring that verifies they remain effective.",
				},
				{
					ID:             "A1.3",
					Text:           "The entity tests recovery plan procedures supporting system recovery to meet its objectives.",
					Recommendation: "Test recovery procedures on a defined schedule and record results, gaps, and remediation actions.",
				},
			},
		},
		{
			Name:        "Processing Integrity",
			Description: "System processing is complete, valid, accurate, timely, and authorized.",
			Controls: []Control{
				{
					ID:             "PI1.1",
					Text:           "The entity obtains or generates, uses, and communicates relevant, quality information regarding the objectives related to processing.",
					Recommendation: "Define data quality requirements and processing specifications for key processes, with documented accountability for accuracy.",
				},
			},
		},
		{
			Name:        "Confidentiality",
			Description: "Information designated as confidential is protected as committed or agreed.",
			Controls: []Control{
				{
					ID:             "C1.1",
					Text:           "The entity identifies and maintains confidential information to meet the entity's objectives related to confidentiality.",
					Recommendation: "Classify confidential information, document handling requirements per classification, and identify retention obligations.",
				},
				{
					ID:             "C1.2",
					Text:           "The entity disposes of confidential information to meet the entity's objectives related to confidentiality.",
					Recommendation: "Define secure disposal procedures for confidential information across media types, with verification of destruction.",
				},
			},
		},
		{
			Name:        "Privacy",
			Description: "Personal information is collected, used, retained, disclosed, and disposed of in conformity with commitments and criteria.",
			Controls: []Control{
				{
					ID:             "P1.1",
					Text:           "The entity provides notice to data subjects about its privacy practices to meet the entity's objectives related to privacy.",
					Recommendation: "Publish a privacy notice covering collection, use, retention, disclosure, and disposal of personal information, and keep it current.",
				},
				{
					ID:             "P4.2",
					Text:           "The entity retains personal information consistent with the entity's objectives related to privacy.",
					Recommendation: "Define retention periods for each category of personal information and implement disposal when retention ends.",
				},
			},
		},
	},
}
