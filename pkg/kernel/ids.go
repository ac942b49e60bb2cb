package kernel

type CandidateID string

func NewCandidateID(id string) CandidateID { return CandidateID(id) }
func (c CandidateID) String() string       { return string(c) }
func (c CandidateID) IsEmpty() bool        { return string(c) == "" }

type CompanyID string

func NewCompanyID(id string) CompanyID { return CompanyID(id) }
func (c CompanyID) String() string     { return string(c) }
func (c CompanyID) IsEmpty() bool      { return string(c) == "" }

type IntroRequestID string

func NewIntroRequestID(id string) IntroRequestID { return IntroRequestID(id) }
func (i IntroRequestID) String() string          { return string(i) }
func (i IntroRequestID) IsEmpty() bool           { return string(i) == "" }

type Email string

func (e Email) String() string { return string(e) }
