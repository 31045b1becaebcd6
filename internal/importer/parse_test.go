package importer_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/importer"
)

var _ = Describe("ParseCSV", func() {
	It("maps the accounting system's column labels", func() {
		doc := strings.Join([]string{
			"ФИО;Должность;Оклад;Отдел;ИНН;БанковскийСчет",
			"Petrova Anna;Accountant;66000;Finance;123456789012;40817810000000000002",
		}, "\n")

		records, err := importer.ParseCSV(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].FullName).To(Equal("Petrova Anna"))
		Expect(*records[0].Position).To(Equal("Accountant"))
		Expect(*records[0].BaseSalary).To(Equal(66000.0))
		Expect(*records[0].Department).To(Equal("Finance"))
		Expect(*records[0].TaxID).To(Equal("123456789012"))
		Expect(*records[0].BankAccount).To(Equal("40817810000000000002"))
	})

	It("accepts the english label set too", func() {
		doc := "full_name;base_salary\nSidorov Petr;58000"

		records, err := importer.ParseCSV(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].FullName).To(Equal("Sidorov Petr"))
		Expect(*records[0].BaseSalary).To(Equal(58000.0))
	})

	It("leaves fields for absent columns unset", func() {
		doc := "ФИО;Оклад\nPetrova Anna;66000"

		records, err := importer.ParseCSV(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records[0].Position).To(BeNil())
		Expect(records[0].Department).To(BeNil())
		Expect(records[0].BaseSalary).NotTo(BeNil())
	})

	It("ignores columns it does not recognize", func() {
		doc := "ФИО;ЛюбимыйЦвет;Оклад\nPetrova Anna;blue;66000"

		records, err := importer.ParseCSV(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records[0].FullName).To(Equal("Petrova Anna"))
		Expect(*records[0].BaseSalary).To(Equal(66000.0))
	})

	It("drops rows with an unparseable salary and keeps the rest", func() {
		doc := strings.Join([]string{
			"ФИО;Оклад",
			"Broken Row;sixty thousand",
			"Good Row;40000",
		}, "\n")

		records, err := importer.ParseCSV(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].FullName).To(Equal("Good Row"))
	})

	It("parses decimal-comma salaries and treats blanks as zero", func() {
		doc := strings.Join([]string{
			"ФИО;Оклад",
			"Comma Salary;66000,50",
			"Blank Salary;",
		}, "\n")

		records, err := importer.ParseCSV(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(*records[0].BaseSalary).To(Equal(66000.50))
		Expect(*records[1].BaseSalary).To(BeZero())
	})

	It("tolerates short rows", func() {
		doc := "ФИО;Должность;Оклад\nOnly Name"

		records, err := importer.ParseCSV(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].FullName).To(Equal("Only Name"))
		Expect(records[0].Position).To(BeNil())
	})

	It("returns no records for an empty document", func() {
		records, err := importer.ParseCSV(strings.NewReader(""))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
	})
})

var _ = Describe("ParseJSON", func() {
	It("reads employee objects under the employees key", func() {
		doc := `{"employees": [
			{"full_name": "Petrova Anna", "position": "Accountant", "base_salary": 66000},
			{"full_name": "Sidorov Petr", "base_salary": 58000}
		]}`

		records, err := importer.ParseJSON(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(records[0].FullName).To(Equal("Petrova Anna"))
		Expect(*records[0].Position).To(Equal("Accountant"))
		Expect(records[1].Position).To(BeNil())
	})

	It("keeps absent keys distinct from explicit values", func() {
		doc := `{"employees": [{"full_name": "Partial", "base_salary": 70000}]}`

		records, err := importer.ParseJSON(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(*records[0].BaseSalary).To(Equal(70000.0))
		Expect(records[0].Department).To(BeNil())
		Expect(records[0].BankAccount).To(BeNil())
	})

	It("skips elements that fail to decode", func() {
		doc := `{"employees": [
			{"full_name": "Good", "base_salary": 1000},
			{"full_name": "Bad", "base_salary": "not a number"}
		]}`

		records, err := importer.ParseJSON(strings.NewReader(doc))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].FullName).To(Equal("Good"))
	})

	It("fails the batch on an unparseable document", func() {
		_, err := importer.ParseJSON(strings.NewReader("{not json"))

		Expect(err).To(HaveOccurred())
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeImportFormat))
	})

	It("returns no records when the employees key is missing", func() {
		records, err := importer.ParseJSON(strings.NewReader(`{"staff": []}`))

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
	})
})
