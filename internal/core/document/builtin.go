package document

import "github.com/contentdesk/contentdesk/internal/core/schema"

// Built-in document templates. These ship with the service and cannot be
// edited or deleted through the API.
func builtinTemplates() []*Template {
	return []*Template{
		{
			ID:          "rent-agreement",
			Title:       "Rent Agreement",
			Description: "Residential rental agreement between a landlord and a tenant.",
			BuiltIn:     true,
			Fields: schema.Fields{
				{ID: "landlordName", Label: "Landlord Name", Type: schema.FieldTypeText, Required: true},
				{ID: "tenantName", Label: "Tenant Name", Type: schema.FieldTypeText, Required: true},
				{ID: "propertyAddress", Label: "Property Address", Type: schema.FieldTypeTextarea, Required: true},
				{ID: "rentAmount", Label: "Monthly Rent", Type: schema.FieldTypeNumber, Required: true},
				{ID: "depositAmount", Label: "Security Deposit", Type: schema.FieldTypeNumber, Required: true},
				{ID: "duration", Label: "Duration (months)", Type: schema.FieldTypeNumber, Required: true},
				{ID: "startDate", Label: "Start Date", Type: schema.FieldTypeDate, Required: true},
				{ID: "specialTerms", Label: "Special Terms", Type: schema.FieldTypeTextarea, Required: false},
			},
			Skeleton: `RENT AGREEMENT

This Rent Agreement is made on {{startDate}} between {{landlordName}} (hereinafter referred to as the "Landlord") and {{tenantName}} (hereinafter referred to as the "Tenant").

1. PREMISES
The Landlord lets out the premises situated at {{propertyAddress}} to the Tenant for residential use.

2. TERM
The tenancy shall run for a period of {{duration}} months commencing on {{startDate}}.

3. RENT
The Tenant shall pay a monthly rent of Rs. {{rentAmount}}, payable in advance on or before the 5th day of each calendar month.

4. SECURITY DEPOSIT
The Tenant has paid a refundable security deposit of Rs. {{depositAmount}}, to be returned on vacation of the premises subject to deductions for damages, if any.

5. SPECIAL TERMS
{{specialTerms}}

IN WITNESS WHEREOF the parties have signed this agreement on the date first written above.

_____________________          _____________________
{{landlordName}}               {{tenantName}}
(Landlord)                     (Tenant)`,
		},
		{
			ID:          "affidavit",
			Title:       "General Affidavit",
			Description: "Sworn statement of facts for general purposes.",
			BuiltIn:     true,
			Fields: schema.Fields{
				{ID: "deponentName", Label: "Deponent Name", Type: schema.FieldTypeText, Required: true},
				{ID: "parentName", Label: "Father's/Mother's Name", Type: schema.FieldTypeText, Required: true},
				{ID: "age", Label: "Age", Type: schema.FieldTypeNumber, Required: true},
				{ID: "address", Label: "Residential Address", Type: schema.FieldTypeTextarea, Required: true},
				{ID: "statement", Label: "Statement of Facts", Type: schema.FieldTypeTextarea, Required: true},
				{ID: "place", Label: "Place", Type: schema.FieldTypeText, Required: true},
				{ID: "date", Label: "Date", Type: schema.FieldTypeDate, Required: true},
			},
			Skeleton: `AFFIDAVIT

I, {{deponentName}}, son/daughter of {{parentName}}, aged {{age}} years, residing at {{address}}, do hereby solemnly affirm and declare as under:

{{statement}}

I further declare that the contents of this affidavit are true and correct to the best of my knowledge and belief, and nothing material has been concealed therefrom.

Place: {{place}}
Date: {{date}}

_____________________
{{deponentName}}
(Deponent)`,
		},
		{
			ID:          "nda",
			Title:       "Non-Disclosure Agreement",
			Description: "Mutual confidentiality agreement between two parties.",
			BuiltIn:     true,
			Fields: schema.Fields{
				{ID: "disclosingParty", Label: "Disclosing Party", Type: schema.FieldTypeText, Required: true},
				{ID: "receivingParty", Label: "Receiving Party", Type: schema.FieldTypeText, Required: true},
				{ID: "purpose", Label: "Purpose of Disclosure", Type: schema.FieldTypeTextarea, Required: true},
				{ID: "termYears", Label: "Term (years)", Type: schema.FieldTypeNumber, Required: true},
				{ID: "governingLaw", Label: "Governing Law", Type: schema.FieldTypeSelect, Required: true,
					Options: []string{"India", "United States", "United Kingdom", "Singapore"}},
				{ID: "effectiveDate", Label: "Effective Date", Type: schema.FieldTypeDate, Required: true},
			},
			Skeleton: `NON-DISCLOSURE AGREEMENT

This Non-Disclosure Agreement ("Agreement") is entered into as of {{effectiveDate}} between {{disclosingParty}} ("Disclosing Party") and {{receivingParty}} ("Receiving Party").

1. PURPOSE
The parties wish to explore the following: {{purpose}}

2. CONFIDENTIALITY
The Receiving Party shall hold all Confidential Information in strict confidence and shall not disclose it to any third party without the prior written consent of the Disclosing Party.

3. TERM
The obligations under this Agreement shall remain in effect for {{termYears}} years from the Effective Date.

4. GOVERNING LAW
This Agreement shall be governed by and construed in accordance with the laws of {{governingLaw}}.

_____________________          _____________________
{{disclosingParty}}            {{receivingParty}}
(Disclosing Party)             (Receiving Party)`,
		},
		{
			ID:          "offer-letter",
			Title:       "Volunteer Offer Letter",
			Description: "Engagement letter for volunteers joining a program.",
			BuiltIn:     true,
			Fields: schema.Fields{
				{ID: "volunteerName", Label: "Volunteer Name", Type: schema.FieldTypeText, Required: true},
				{ID: "programName", Label: "Program Name", Type: schema.FieldTypeText, Required: true},
				{ID: "role", Label: "Role", Type: schema.FieldTypeText, Required: true},
				{ID: "hoursPerWeek", Label: "Hours per Week", Type: schema.FieldTypeNumber, Required: true},
				{ID: "startDate", Label: "Start Date", Type: schema.FieldTypeDate, Required: true},
				{ID: "coordinatorName", Label: "Program Coordinator", Type: schema.FieldTypeText, Required: true},
			},
			Skeleton: `VOLUNTEER ENGAGEMENT LETTER

Dear {{volunteerName}},

We are delighted to welcome you to the {{programName}} program as a {{role}}, starting on {{startDate}}.

Your expected commitment is {{hoursPerWeek}} hours per week. Your program coordinator, {{coordinatorName}}, will guide your onboarding and remain your primary point of contact.

This engagement is voluntary and does not constitute employment. Either party may end it at any time with written notice.

We look forward to the impact we will create together.

Warm regards,

_____________________
{{coordinatorName}}
Program Coordinator, {{programName}}`,
		},
	}
}
