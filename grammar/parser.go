package grammar

// Parse turns field text into its raw parse tree. Any malformed input yields
// a *ParseError.
func Parse(text string) (*RawNode, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, newParseError(1, 1, "expected field text, but got nothing")
	}

	if err := checkParenthesesBalance(tokens); err != nil {
		return nil, err
	}

	if err := checkBooleanExpressionSyntax(tokens); err != nil {
		return nil, err
	}

	return infixToRawTree(tokens)
}

func tokenize(text string) ([]token, error) {
	t := newTokenizer(text)
	tokens := make([]token, 0)

	for {
		tk, err := t.getNextToken()
		if err != nil {
			return nil, err
		}

		if *tk == tokenNoop {
			break
		}

		tokens = append(tokens, *tk)
	}

	return tokens, nil
}

func infixToRawTree(tokens []token) (*RawNode, error) {
	t, err := infixToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	return postfixToRawTree(t)
}

// infixToPostfix is a shunting-yard pass. Closing parentheses emit a group
// token so the tree keeps track of explicit source brackets.
func infixToPostfix(tokens []token) ([]token, error) {
	if len(tokens) == 0 {
		return nil, newParseError(1, 1, "no tokens given")
	}

	s := stack[token]{}
	postfix := make([]token, 0, len(tokens))

	for _, tk := range tokens {
		switch {
		case tk.isLeftParenthesis():
			s.push(tk)
		case tk.isRightParenthesis():
			for tki := s.pop(); tki != tokenNoop; tki = s.pop() {
				if tki.isLeftParenthesis() {
					break
				}
				postfix = append(postfix, tki)
			}
			postfix = append(postfix, token{_type: group, line: tk.line, column: tk.column})
		case tk.isOperand():
			postfix = append(postfix, tk)
		case tk.isUnaryOperator():
			s.push(tk)
		case tk.isBinaryOperator():
			for tki := s.peek(); tki != tokenNoop; tki = s.peek() {
				if tki.isLeftParenthesis() || !tk.hasLowerOrSamePrecedenceThan(tki) {
					break
				}
				postfix = append(postfix, s.pop())
			}
			s.push(tk)
		default:
			return nil, newParseError(tk.line, tk.column, "token '%s' is invalid as part of field text", tk.strValue)
		}
	}

	for tki := s.pop(); tki != tokenNoop; tki = s.pop() {
		if !tki.isParenthesis() {
			postfix = append(postfix, tki)
		}
	}

	return postfix, nil
}

func postfixToRawTree(tokens []token) (*RawNode, error) {
	if len(tokens) == 0 {
		return nil, newParseError(1, 1, "no tokens given")
	}

	s := stack[*RawNode]{}

	for _, tk := range tokens {
		switch {
		case tk.isOperand():
			s.push(&RawNode{
				Operator: tk.leaf.operator,
				Fields:   tk.leaf.fields,
				Values:   tk.leaf.values,
			})
		case tk._type == group:
			inner := s.pop()
			if inner == nil {
				return nil, newParseError(tk.line, tk.column, "empty parentheses")
			}
			s.push(&RawNode{FieldText: inner})
		case tk.isUnaryOperator():
			inner := s.pop()
			if inner == nil {
				return nil, newParseError(tk.line, tk.column, "expected field text after '%s'", tk.strValue)
			}
			inner.Negations++
			s.push(inner)
		case tk.isBinaryOperator():
			right := s.pop()
			left := s.pop()
			if left == nil || right == nil {
				return nil, newParseError(tk.line, tk.column, "operator '%s' is missing an operand", tk.strValue)
			}
			s.push(&RawNode{
				Boolean: tk.keyword(),
				Left:    left,
				Right:   right,
			})
		}
	}

	root := s.pop()
	if root == nil || len(s) > 0 {
		return nil, newParseError(1, 1, "field text does not reduce to a single expression")
	}

	return root, nil
}

func checkParenthesesBalance(tokens []token) error {
	unclosedParentheses := stack[token]{}
	for _, t := range tokens {
		if t.isLeftParenthesis() {
			unclosedParentheses.push(t)
		} else if t.isRightParenthesis() {
			tk := unclosedParentheses.pop()
			if tk == tokenNoop {
				return newParseError(t.line, t.column, "unexpected closing parenthesis")
			}
		}
	}

	if len(unclosedParentheses) > 0 {
		tk := unclosedParentheses.pop()
		return newParseError(tk.line, tk.column, "opening parenthesis is missing its closing parenthesis")
	}

	return nil
}

// checkBooleanExpressionSyntax walks the tokens alternating between expecting
// an operand (an expression, NOT or '(') and expecting a binary operator or ')'.
func checkBooleanExpressionSyntax(tokens []token) error {
	if len(tokens) == 0 {
		return newParseError(1, 1, "empty field text")
	}

	var previousToken token
	expectOperand := true

	for i, t := range tokens {
		if expectOperand {
			switch {
			case t.isOperand():
				expectOperand = false
			case t.isLeftParenthesis(), t.isUnaryOperator():
			case t.isRightParenthesis() && previousToken.isLeftParenthesis():
				return newParseError(t.line, t.column, "empty parentheses")
			case i == 0:
				return newParseError(t.line, t.column, "can't start field text with '%s'", t.strValue)
			default:
				return newParseError(t.line, t.column, "expected expression after '%s', but got '%s'", previousToken.strValue, t.strValue)
			}
		} else {
			switch {
			case t.isBinaryOperator():
				expectOperand = true
			case t.isRightParenthesis():
			default:
				return newParseError(t.line, t.column, "expected operator after '%s', but got '%s'", previousToken.strValue, t.strValue)
			}
		}

		previousToken = t
	}

	if expectOperand {
		return newParseError(previousToken.line, previousToken.column, "can't end field text with '%s'", previousToken.strValue)
	}

	return nil
}
