package catalog

var nist80053 = &Framework{
	ID:   "NIST_800_53",
	Name: "NIST SP 800-53 Rev. 5",
	Categories: []Category{
		{
			Name:        "Access Control",
			Description: "Limit system access to authorized users, processes, and devices.",
			Controls: []Control{
				{
					ID:             "AC-1",
					Text:           "Develop, document, and disseminate access control policy and procedures.",
					Recommendation: "Publish an access control policy covering account types, approval workflow, and review frequency; assign an owner responsible for keeping it current.",
				},
				{
					ID:             "AC-2",
					Text:           "Manage system accounts, including establishing, activating, modifying, reviewing, disabling, and removing accounts.",
					Recommendation: "Document the account lifecycle end to end, including automated disabling of inactive accounts and periodic recertification of all access.",
				},
				{
					ID:             "AC-6",
					Text:           "Employ the principle of least privilege, allowing only authorized accesses necessary to accomplish assigned tasks.",
					Recommendation: "State least privilege as the default posture; require justification and time-bounded approval for any elevated access.",
				},
			},
		},
		{
			Name:        "Audit and Accountability",
			Description: "Create, protect, and retain system audit records to enable monitoring, analysis, and investigation.",
			Controls: []Control{
				{
					ID:             "AU-2",
					Text:           "Identify the types of events that the system is capable of logging and coordinate the event logging function with other organizational entities.",
					Recommendation: "Define a logging standard listing required event types (authentication, privilege use, data access) for every system class.",
				},
				{
					ID:             "AU-6",
					Text:           "Review and analyze system audit records for indications of inappropriate or unusual activity.",
					Recommendation: "Assign responsibility for log review, define review frequency, and document escalation criteria for suspicious findings.",
				},
				{
					ID:             "AU-9",
					Text:           "Protect audit information and audit logging tools from unauthorized access, modification, and deletion.",
					Recommendation: "Restrict log access to a named role, ship logs to tamper-resistant central storage, and define retention periods.",
				},
			},
		},
		{
			Name:        "Identification and Authentication",
			Description: "Identify and authenticate users, processes, and devices before granting access.",
			Controls: []Control{
				{
					ID:             "IA-2",
					Text:           "Uniquely identify and authenticate organizational users and associate that identity with processes acting on behalf of those users.",
					Recommendation: "Prohibit shared accounts, require unique identifiers for every user, and mandate multi-factor authentication for privileged and remote access.",
				},
				{
					ID:             "IA-5",
					Text:           "Manage system authenticators, including password complexity, lifetime, and protection requirements.",
					Recommendation: "Specify authenticator requirements (length, complexity, rotation on compromise) and secure storage expectations in policy.",
				},
			},
		},
		{
			Name:        "Incident Response",
			Description: "Establish an operational incident handling capability including preparation, detection, analysis, containment, recovery, and user response activities.",
			Controls: []Control{
				{
					ID:             "IR-4",
					Text:           "Implement an incident handling capability for incidents that includes preparation, detection and analysis, containment, eradication, and recovery.",
					Recommendation: "Document the full incident handling lifecycle with per-phase responsibilities and integrate it with business continuity plans.",
				},
				{
					ID:             "IR-6",
					Text:           "Require personnel to report suspected incidents to the organizational incident response capability within a defined time period.",
					Recommendation: "Define reporting channels and maximum reporting timelines for all personnel, and communicate them during onboarding and training.",
				},
			},
		},
		{
			Name:        "System and Communications Protection",
			Description: "Monitor, control, and protect communications at external and internal system boundaries.",
			Controls: []Control{
				{
					ID:             "SC-7",
					Text:           "Monitor and control communications at the external managed interfaces to the system and at key internal managed interfaces.",
					Recommendation: "Document the network boundary architecture, required segmentation, and the review process for firewall rule changes.",
				},
				{
					ID:             "SC-8",
					Text:           "Protect the confidentiality and integrity of transmitted information.",
					Recommendation: "Require cryptographic protection for information in transit, naming approved protocols and minimum versions.",
				},
				{
					ID:             "SC-28",
					Text:           "Protect the confidentiality and integrity of information at rest.",
					Recommendation: "Mandate encryption at rest for designated data categories and document key management ownership and rotation.",
				},
			},
		},
		{
			Name:        "Risk Assessment",
			Description: "Periodically assess risk to organizational operations, assets, and individuals from system operation.",
			Controls: []Control{
				{
					ID:             "RA-3",
					Text:           "Conduct risk assessments and document risk assessment results.",
					Recommendation: "Establish a recurring risk assessment process with documented methodology, results, and risk acceptance sign-off.",
				},
				{
					ID:             "RA-5",
					Text:           "Monitor and scan for vulnerabilities in the system and hosted applications.",
					Recommendation: "Define scan coverage, frequency, and remediation SLAs by severity; track exceptions with documented risk acceptance.",
				},
			},
		},
	},
}
